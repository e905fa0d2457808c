package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/devconnector/internal/common"
	"github.com/dmitrijs2005/devconnector/internal/logging"
	"github.com/dmitrijs2005/devconnector/internal/rpc"
	"github.com/dmitrijs2005/devconnector/internal/server/services"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type accountsHandler struct {
	rpc.UnimplementedAccountsServer
	registrations Registrar
	logger        logging.Logger
}

func (h *accountsHandler) Register(ctx context.Context, req *rpc.RegisterRequest) (*rpc.RegisterResponse, error) {
	result, err := h.registrations.Register(ctx, services.RegisterInput{
		Name:     req.GetName(),
		Email:    req.GetEmail(),
		Password: req.GetPassword(),
	})
	if err != nil {
		return nil, h.toStatus(ctx, err)
	}

	return &rpc.RegisterResponse{Token: result.Token}, nil
}

// toStatus maps a registration error to a gRPC status. Client errors carry a
// BadRequest detail; anything else becomes a bare Internal.
func (h *accountsHandler) toStatus(ctx context.Context, err error) error {
	var ve *services.ViolationError
	if !errors.As(err, &ve) {
		h.logger.Error(ctx, "register failed", "error", err)
		return status.Error(codes.Internal, common.ErrorInternal.Error())
	}

	code := codes.InvalidArgument
	if ve.Kind == services.KindConflict {
		code = codes.AlreadyExists
	}

	br := &errdetails.BadRequest{}
	for _, v := range ve.Violations {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       v.Field,
			Description: v.Message,
		})
	}

	st := status.New(code, strings.Join(ve.Messages(), "; "))
	if withDetails, derr := st.WithDetails(br); derr == nil {
		st = withDetails
	}
	return st.Err()
}
