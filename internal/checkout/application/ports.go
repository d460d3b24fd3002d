package application

import (
	catalogdomain "github.com/dmehra2102/Retail-POS-System/internal/catalog/domain"
	"github.com/dmehra2102/Retail-POS-System/pkg/journal"
)

type CatalogService interface {
	Get(id catalogdomain.ProductID) (catalogdomain.Product, error)
	Reserve(id catalogdomain.ProductID, qty int) error
	Release(id catalogdomain.ProductID, qty int) error
	List() []catalogdomain.Product
}

type EventRecorder interface {
	Append(e journal.Event) journal.Event
}
