package meal

import (
	"context"

	"github.com/solnascente/frontdesk-api/internal/domain/entity"
)

// TicketPrinter imprime el ticket físico de una comida. La implementación
// vive en infrastructure; cualquier fallo se trata como no fatal.
type TicketPrinter interface {
	PrintTicket(ctx context.Context, ticket *entity.MealTicket) error
}
