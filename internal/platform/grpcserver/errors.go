package grpcserver

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tair/packing-checklist/pkg/apperrors"
)

// ToStatus maps an error to its gRPC status. Store failures keep a generic message.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	return status.Error(codeFor(apperrors.KindOf(err)), apperrors.PublicMessage(err))
}

func codeFor(kind apperrors.Kind) codes.Code {
	switch kind {
	case apperrors.KindNotFound, apperrors.KindNotFavorite:
		return codes.NotFound
	case apperrors.KindAlreadyDeleted, apperrors.KindAlreadyShared, apperrors.KindAlreadyUnshared:
		return codes.FailedPrecondition
	case apperrors.KindForbidden:
		return codes.PermissionDenied
	case apperrors.KindItemReviewDeleted:
		return codes.FailedPrecondition
	case apperrors.KindInvalidInput:
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}
