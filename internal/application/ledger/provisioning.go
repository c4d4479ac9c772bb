package ledger

import (
	"github.com/storetrack/backend/internal/domain/shared/valueobject"
)

// ProvisionDefaults are the price and quantity a freshly provisioned
// ledger row starts with. Values come from configuration.
type ProvisionDefaults struct {
	Price    valueobject.Money
	Quantity int
}
