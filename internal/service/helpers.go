package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ChristianALins/cliver-seguros/internal/domainerr"
)

// formatoData is the wire format for calendar dates. The core never produces
// locale-formatted strings; that belongs to the presentation layer.
const formatoData = "2006-01-02"

func parseData(campo, s string) (time.Time, error) {
	t, err := time.Parse(formatoData, s)
	if err != nil {
		return time.Time{}, domainerr.Invalid(campo, "data inválida, use AAAA-MM-DD")
	}
	return t, nil
}

func formatData(t time.Time) string { return t.Format(formatoData) }

// hoje truncates a timestamp to the calendar day in UTC.
func hoje(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// traduzErro converts a repository error into a domain error: record-not-found
// becomes NOT_FOUND for the named entity, domain errors pass through, anything
// else is an opaque storage failure.
func traduzErro(err error, entidade string) error {
	if err == nil {
		return nil
	}
	var de *domainerr.Error
	if errors.As(err, &de) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainerr.NotFound(entidade)
	}
	return domainerr.Storage(err)
}
