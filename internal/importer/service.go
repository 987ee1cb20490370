package importer

import (
	"context"
	"fmt"
	"io"

	"github.com/ehfoto/backoffice/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=importer
type Ledger interface {
	CreateBatch(ctx context.Context, params []transaction.CreateParams) ([]*transaction.Transaction, error)
}

type Service struct {
	parser *Parser
	ledger Ledger
}

func NewService(ledger Ledger) *Service {
	return &Service{parser: NewParser(), ledger: ledger}
}

// Import parses r and stores every entry in one batch. Nothing is stored
// when any row is invalid.
func (s *Service) Import(ctx context.Context, r io.Reader) ([]*transaction.Transaction, error) {
	params, err := s.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	if len(params) == 0 {
		return nil, nil
	}

	txs, err := s.ledger.CreateBatch(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("storing imported entries: %w", err)
	}

	return txs, nil
}
