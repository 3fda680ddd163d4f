package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/unsaid/internal/common"
	"github.com/dmitrijs2005/unsaid/internal/diary"
	pb "github.com/dmitrijs2005/unsaid/internal/proto"
	"github.com/dmitrijs2005/unsaid/internal/quota"
	"github.com/dmitrijs2005/unsaid/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// saltTimeout bounds GetSalt, which runs before any other call and
// doubles as the reachability check at login.
const saltTimeout = 12 * time.Second

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.DiaryClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	onRefresh    func(accessToken, refreshToken string)
}

// NewUnsaidClient connects lazily to endpointURL. Extra dial options are
// appended after the defaults.
func NewUnsaidClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)
	conn, err := grpc.NewClient(s.endpointURL, dialOpts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewDiaryClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}
	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

// SetSession installs a token pair, e.g. one restored from the local cache.
func (s *GRPCClient) SetSession(accessToken, refreshToken string) {
	s.mu.Lock()
	s.accessToken, s.refreshToken = accessToken, refreshToken
	s.mu.Unlock()
}

// OnTokensRefreshed registers a callback run after every successful
// refresh so the caller can persist the rotated pair.
func (s *GRPCClient) OnTokensRefreshed(fn func(accessToken, refreshToken string)) {
	s.mu.Lock()
	s.onRefresh = fn
	s.mu.Unlock()
}

// refresh swaps the token pair. The refresh token is single use, so two
// callers racing here must not both spend it: the second one sees the
// pair already changed and just retries with it.
func (s *GRPCClient) refresh(ctx context.Context, spent string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.refreshToken != spent {
		return nil
	}
	if s.refreshToken == "" {
		return ErrUnauthorized
	}

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: s.refreshToken})
	if err != nil {
		return err
	}

	s.accessToken = resp.GetAccessToken()
	s.refreshToken = resp.GetRefreshToken()
	if s.onRefresh != nil {
		s.onRefresh(s.accessToken, s.refreshToken)
	}
	return nil
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if rpc.PublicMethods[method] {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	access, refresh := s.tokens()
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	if rerr := s.refresh(ctx, refresh); rerr != nil {
		return rerr
	}

	access, _ = s.tokens()
	return invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUnauthorized) {
		return err
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated:
		if st.Message() == common.ErrRefreshTokenExpired.Error() {
			return ErrSessionExpired
		}
		return ErrUnauthorized
	case codes.PermissionDenied:
		return ErrUnauthorized
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.AlreadyExists:
		return common.ErrorAlreadyExists
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrorValidation, st.Message())
	case codes.Unavailable:
		if st.Message() == "companion is not configured" {
			return ErrCompanionUnavailable
		}
		return ErrUnavailable
	case codes.DeadlineExceeded, codes.Canceled:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func (s *GRPCClient) Register(ctx context.Context, username string, salt, verifier []byte) (string, error) {
	resp, err := s.client.Register(ctx, &pb.RegisterRequest{Username: username, Salt: salt, Verifier: verifier})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetUserId(), nil
}

func (s *GRPCClient) GetSalt(ctx context.Context, username string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, saltTimeout)
	defer cancel()

	resp, err := s.client.GetSalt(ctx, &pb.GetSaltRequest{Username: username})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetSalt(), nil
}

func (s *GRPCClient) Login(ctx context.Context, username string, verifier []byte) (Session, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: username, Verifier: verifier})
	if err != nil {
		return Session{}, s.mapError(err)
	}

	s.SetSession(resp.GetAccessToken(), resp.GetRefreshToken())
	return Session{UserID: resp.GetUserId(), AccessToken: resp.GetAccessToken(), RefreshToken: resp.GetRefreshToken()}, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Profile(ctx context.Context) (rpc.Profile, error) {
	resp, err := s.client.GetProfile(ctx, &pb.GetProfileRequest{})
	if err != nil {
		return rpc.Profile{}, s.mapError(err)
	}
	return rpc.ProfileFromProto(resp), nil
}

func (s *GRPCClient) SetName(ctx context.Context, name string) error {
	_, err := s.client.SetName(ctx, &pb.SetNameRequest{Name: name})
	return s.mapError(err)
}

func (s *GRPCClient) PutEntry(ctx context.Context, e diary.Entry) (diary.Entry, error) {
	resp, err := s.client.PutEntry(ctx, rpc.EntryToProto(e))
	if err != nil {
		return diary.Entry{}, s.mapError(err)
	}
	return rpc.EntryFromProto(resp), nil
}

func (s *GRPCClient) ListEntries(ctx context.Context, sinceMs int64) ([]diary.Entry, error) {
	resp, err := s.client.ListEntries(ctx, &pb.ListEntriesRequest{SinceMs: sinceMs})
	if err != nil {
		return nil, s.mapError(err)
	}
	return rpc.EntriesFromProto(resp.GetEntries()), nil
}

func (s *GRPCClient) UpdateEntry(ctx context.Context, req rpc.UpdateEntryRequest) (diary.Entry, error) {
	resp, err := s.client.UpdateEntry(ctx, rpc.UpdateToProto(req))
	if err != nil {
		return diary.Entry{}, s.mapError(err)
	}
	return rpc.EntryFromProto(resp), nil
}

func (s *GRPCClient) PinEntry(ctx context.Context, id string, pinned bool) error {
	_, err := s.client.PinEntry(ctx, &pb.PinEntryRequest{Id: id, Pinned: pinned})
	return s.mapError(err)
}

func (s *GRPCClient) DeleteEntry(ctx context.Context, id string) error {
	_, err := s.client.DeleteEntry(ctx, &pb.DeleteEntryRequest{Id: id})
	return s.mapError(err)
}

func (s *GRPCClient) Allowance(ctx context.Context) (quota.Allowance, error) {
	resp, err := s.client.GetAllowance(ctx, &pb.GetAllowanceRequest{})
	if err != nil {
		return quota.Allowance{}, s.mapError(err)
	}
	return rpc.AllowanceFromProto(resp), nil
}

func (s *GRPCClient) Chat(ctx context.Context, req rpc.ChatRequest) (rpc.ChatResponse, error) {
	resp, err := s.client.Chat(ctx, rpc.ChatToProto(req))
	if err != nil {
		return rpc.ChatResponse{}, s.mapError(err)
	}
	return rpc.ChatResponseFromProto(resp), nil
}

func (s *GRPCClient) PresignAudioUpload(ctx context.Context, audioID string) (string, string, error) {
	resp, err := s.client.PresignAudioUpload(ctx, &pb.PresignAudioRequest{AudioId: audioID})
	if err != nil {
		return "", "", s.mapError(err)
	}
	return resp.GetAudioId(), resp.GetUrl(), nil
}

func (s *GRPCClient) PresignAudioDownload(ctx context.Context, audioID string) (string, error) {
	resp, err := s.client.PresignAudioDownload(ctx, &pb.PresignAudioRequest{AudioId: audioID})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetUrl(), nil
}
