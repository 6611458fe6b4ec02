package donations

import "errors"

var ErrDonationNotFound = errors.New("donation not found")
