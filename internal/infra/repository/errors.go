package repository

import (
	"log/slog"

	"storefront-orders/internal/infra"
	"storefront-orders/internal/pkg/pgconv"
)

func wrapWriteErr(logger *slog.Logger, msg string, err error) error {
	switch {
	case pgconv.IsUniqueViolation(err):
		return infra.WrapRepoErr(logger, infra.KindDuplicateKey, msg+" ("+pgconv.ConstraintName(err)+")", err)
	case pgconv.IsForeignKeyViolation(err):
		return infra.WrapRepoErr(logger, infra.KindForeignKeyViolated, msg, err)
	default:
		return infra.WrapRepoErr(logger, infra.KindDBFailure, msg, err)
	}
}
