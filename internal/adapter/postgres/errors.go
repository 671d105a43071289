package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeInvalidText         = "22P02"
)

// translateError maps driver errors onto the domain error categories.
func translateError(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s not found: %w", entity, domain.ErrNotFound)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s already exists (%s): %w", entity, pqErr.Constraint, domain.ErrConflict)
		case codeNotNullViolation:
			return fmt.Errorf("required field is missing (%s): %w", pqErr.Column, domain.ErrInvalidInput)
		case codeCheckViolation:
			return fmt.Errorf("%s violates %s: %w", entity, pqErr.Constraint, domain.ErrInvalidInput)
		case codeInvalidText:
			return fmt.Errorf("%s: %s: %w", entity, pqErr.Message, domain.ErrInvalidInput)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s references a missing row (%s): %w", entity, pqErr.Constraint, domain.ErrNotFound)
		}
	}

	return fmt.Errorf("%s query failed: %w: %w", entity, domain.ErrDependencyFailure, err)
}
