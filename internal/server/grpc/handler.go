package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/registre/internal/common"
	"github.com/dmitrijs2005/registre/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func (s *GRPCServer) ListRecords(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	list := s.registry.List(ctx)

	items := make([]any, 0, len(list))
	for _, r := range list {
		items = append(items, recordFields(r))
	}

	out, err := structpb.NewStruct(map[string]any{"records": items})
	if err != nil {
		s.logger.Error(ctx, "error encoding records", "error", err)
		return nil, status.Error(codes.Internal, common.ErrorInternal.Error())
	}
	return out, nil
}

func (s *GRPCServer) AddRecord(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	first := stringField(req, "firstName")
	last := stringField(req, "lastName")

	register := s.registry.Register
	if req.GetFields()["enrich"].GetBoolValue() {
		register = s.registry.RegisterWithProfile
	}

	rec, err := register(ctx, first, last)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out, err := structpb.NewStruct(recordFields(*rec))
	if err != nil {
		return nil, status.Error(codes.Internal, common.ErrorInternal.Error())
	}
	return out, nil
}

func (s *GRPCServer) RemoveRecord(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if err := s.registry.Delete(ctx, req.GetValue()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) ClearRecords(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if err := s.registry.ClearAll(ctx); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) GenerateProfile(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	p := s.registry.GenerateProfile(ctx, stringField(req, "firstName"), stringField(req, "lastName"))

	out, err := structpb.NewStruct(map[string]any{"role": p.Role, "bio": p.Bio})
	if err != nil {
		return nil, status.Error(codes.Internal, common.ErrorInternal.Error())
	}
	return out, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return wrapperspb.String("OK"), nil
}

func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	if errors.Is(err, common.ErrorValidation) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	s.logger.Error(ctx, err.Error())
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}

func stringField(s *structpb.Struct, name string) string {
	return s.GetFields()[name].GetStringValue()
}

// recordFields maps a record onto the same keys as its JSON form.
func recordFields(r models.Record) map[string]any {
	m := map[string]any{
		"id":        r.ID,
		"firstName": r.FirstName,
		"lastName":  r.LastName,
		"createdAt": r.CreatedAt,
	}
	if r.Role != "" {
		m["role"] = r.Role
	}
	if r.Bio != "" {
		m["bio"] = r.Bio
	}
	return m
}

// RecordFromStruct decodes a record produced by AddRecord or ListRecords.
func RecordFromStruct(s *structpb.Struct) models.Record {
	return models.Record{
		ID:        stringField(s, "id"),
		FirstName: stringField(s, "firstName"),
		LastName:  stringField(s, "lastName"),
		Role:      stringField(s, "role"),
		Bio:       stringField(s, "bio"),
		CreatedAt: int64(s.GetFields()["createdAt"].GetNumberValue()),
	}
}
