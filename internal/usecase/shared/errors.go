package shared

import (
	"storefront-orders/internal/infra"
	"storefront-orders/internal/pkg/errs"
)

var (
	ErrConflictingUpdate = errs.NewKind(errs.ErrConflict, "record was modified by another request")
	ErrUpstreamFailure   = errs.NewKind(errs.ErrUpstream, "upstream service failed")
)

// Translate maps repository failures onto domain errors. notFound and
// duplicate may be nil to keep the generic kinds.
func Translate(err, notFound, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound) && notFound != nil:
		return errs.Mark(err, notFound)
	case infra.IsKind(err, infra.KindDuplicateKey) && duplicate != nil:
		return errs.Mark(err, duplicate)
	case infra.IsKind(err, infra.KindPreconditionFailed):
		return errs.Mark(err, ErrConflictingUpdate)
	}
	return err
}
