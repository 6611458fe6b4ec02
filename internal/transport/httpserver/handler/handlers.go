package handler

import (
	analyticsdomain "donation-hub-go/internal/domain/analytics"
	campaignsdomain "donation-hub-go/internal/domain/campaigns"
	contentdomain "donation-hub-go/internal/domain/content"
	donationsdomain "donation-hub-go/internal/domain/donations"
	messagesdomain "donation-hub-go/internal/domain/messages"
	programsdomain "donation-hub-go/internal/domain/programs"
	storiesdomain "donation-hub-go/internal/domain/stories"
	"donation-hub-go/pkg/logger"
)

type Handlers struct {
	Donations *donationsdomain.Service
	Analytics *analyticsdomain.Service
	Campaigns *campaignsdomain.Service
	Programs  *programsdomain.Service
	Stories   *storiesdomain.Service
	Messages  *messagesdomain.Service
	Content   *contentdomain.Service
	log       logger.Logger
}

func New(
	donations *donationsdomain.Service,
	analytics *analyticsdomain.Service,
	campaigns *campaignsdomain.Service,
	programs *programsdomain.Service,
	stories *storiesdomain.Service,
	messages *messagesdomain.Service,
	content *contentdomain.Service,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Donations: donations,
		Analytics: analytics,
		Campaigns: campaigns,
		Programs:  programs,
		Stories:   stories,
		Messages:  messages,
		Content:   content,
		log:       log,
	}
}
