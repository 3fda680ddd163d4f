// Package grpc serves the unsaid.v1.Diary API and the standard gRPC health
// service on one listener.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/unsaid/internal/companion"
	"github.com/dmitrijs2005/unsaid/internal/diary"
	"github.com/dmitrijs2005/unsaid/internal/logging"
	pb "github.com/dmitrijs2005/unsaid/internal/proto"
	"github.com/dmitrijs2005/unsaid/internal/quota"
	"github.com/dmitrijs2005/unsaid/internal/rpc"
	"github.com/dmitrijs2005/unsaid/internal/server/models"
	"github.com/dmitrijs2005/unsaid/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type UserService interface {
	Register(ctx context.Context, username string, salt, verifier []byte) (*models.User, error)
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifier []byte) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	GetProfile(ctx context.Context, userID string) (*services.Profile, error)
	SetName(ctx context.Context, userID, name string) error
}

type EntryService interface {
	Save(ctx context.Context, userID string, e diary.Entry) (*diary.Entry, error)
	List(ctx context.Context, userID string, sinceMs int64) ([]diary.Entry, error)
	Update(ctx context.Context, userID, id string, flags models.EntryFlags) (*diary.Entry, error)
	Pin(ctx context.Context, userID, id string) error
	Unpin(ctx context.Context, userID, id string) error
	Delete(ctx context.Context, userID, id string) error
}

type CompanionService interface {
	Allowance(ctx context.Context, userID string) (quota.Allowance, error)
	Reply(ctx context.Context, userID, text string, history []companion.Message, mode string) (*services.Reply, error)
}

type AudioService interface {
	PresignUpload(ctx context.Context, userID, audioID string) (string, string, error)
	PresignDownload(ctx context.Context, userID, audioID string) (string, error)
}

// Services groups what the handlers delegate to.
type Services struct {
	Users     UserService
	Entries   EntryService
	Companion CompanionService
	Audio     AudioService
}

type GRPCServer struct {
	pb.UnimplementedDiaryServer
	address   string
	users     UserService
	entries   EntryService
	companion CompanionService
	audio     AudioService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, svc Services, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     svc.Users,
		entries:   svc.Entries,
		companion: svc.Companion,
		audio:     svc.Audio,
		jwtSecret: []byte(secretKey),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.recoveryInterceptor, s.accessTokenInterceptor))
	pb.RegisterDiaryServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(rpc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	return srv
}

// Run listens on the configured address until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis and stops gracefully once ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}
