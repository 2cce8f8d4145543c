// Package grpc exposes the registry over gRPC as the registre.Registry
// service.
package grpc

import (
	"context"
	"errors"
	"net"

	"github.com/dmitrijs2005/registre/internal/logging"
	"github.com/dmitrijs2005/registre/internal/server/models"
	"google.golang.org/grpc"
)

// Registry is the set of registration operations the gRPC layer needs.
type Registry interface {
	List(ctx context.Context) []models.Record
	Register(ctx context.Context, firstName, lastName string) (*models.Record, error)
	RegisterWithProfile(ctx context.Context, firstName, lastName string) (*models.Record, error)
	Delete(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
	GenerateProfile(ctx context.Context, firstName, lastName string) models.Profile
}

type GRPCServer struct {
	address  string
	registry Registry
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, registry Registry) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		registry: registry,
	}
}

// newServer builds a grpc.Server with the service and interceptors registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))
	srv.RegisterService(&ServiceDesc, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections; a stop issued before Serve
	// begins is still a clean shutdown
	if err := srv.Serve(listen); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}

	return nil
}
