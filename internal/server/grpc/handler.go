package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/unsaid/internal/common"
	"github.com/dmitrijs2005/unsaid/internal/companion"
	pb "github.com/dmitrijs2005/unsaid/internal/proto"
	"github.com/dmitrijs2005/unsaid/internal/rpc"
	"github.com/dmitrijs2005/unsaid/internal/server/auth"
	"github.com/dmitrijs2005/unsaid/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors to gRPC codes. Anything unrecognised is
// logged and reported as Internal without detail.
func (s *GRPCServer) toStatus(ctx context.Context, method string, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, companion.ErrMissingAPIKey):
		return status.Error(codes.Unavailable, "companion is not configured")
	}
	s.logger.Error(ctx, "request failed", "method", method, "err", err)
	return status.Error(codes.Internal, "internal error")
}

func userID(ctx context.Context) (string, error) {
	id, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}
	return id, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	u, err := s.users.Register(ctx, req.GetUsername(), req.GetSalt(), req.GetVerifier())
	if err != nil {
		return nil, s.toStatus(ctx, pb.Diary_Register_FullMethodName, err)
	}
	s.logger.Info(ctx, "Registered", "user_id", u.ID)
	return &pb.RegisterResponse{UserId: u.ID}, nil
}

func (s *GRPCServer) GetSalt(ctx context.Context, req *pb.GetSaltRequest) (*pb.GetSaltResponse, error) {
	salt, err := s.users.GetSalt(ctx, req.GetUsername())
	if err != nil {
		return nil, s.toStatus(ctx, pb.Diary_GetSalt_FullMethodName, err)
	}
	return &pb.GetSaltResponse{Salt: salt}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.TokenResponse, error) {
	tokens, err := s.users.Login(ctx, req.GetUsername(), req.GetVerifier())
	if err != nil {
		return nil, s.toStatus(ctx, pb.Diary_Login_FullMethodName, err)
	}
	return &pb.TokenResponse{UserId: tokens.UserID, AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.TokenResponse, error) {
	tokens, err := s.users.RefreshToken(ctx, req.GetRefreshToken())
	if err != nil {
		return nil, s.toStatus(ctx, pb.Diary_RefreshToken_FullMethodName, err)
	}
	return &pb.TokenResponse{UserId: tokens.UserID, AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Ping(context.Context, *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, _ *pb.GetProfileRequest) (*pb.Profile, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.users.GetProfile(ctx, uid)
	if err != nil {
		return nil, s.toStatus(ctx, pb.Diary_GetProfile_FullMethodName, err)
	}
	return rpc.ProfileToProto(rpc.Profile{Username: p.UserName, UserProfile: p.UserProfile}), nil
}

func (s *GRPCServer) SetName(ctx context.Context, req *pb.SetNameRequest) (*pb.SetNameResponse, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.SetName(ctx, uid, req.GetName()); err != nil {
		return nil, s.toStatus(ctx, pb.Diary_SetName_FullMethodName, err)
	}
	return &pb.SetNameResponse{}, nil
}

func (s *GRPCServer) PutEntry(ctx context.Context, req *pb.Entry) (*pb.Entry, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	saved, err := s.entries.Save(ctx, uid, rpc.EntryFromProto(req))
	if err != nil {
		return nil, s.toStatus(ctx, pb.Diary_PutEntry_FullMethodName, err)
	}
	return rpc.EntryToProto(*saved), nil
}

func (s *GRPCServer) ListEntries(ctx context.Context, req *pb.ListEntriesRequest) (*pb.ListEntriesResponse, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.entries.List(ctx, uid, req.GetSinceMs())
	if err != nil {
		return nil, s.toStatus(ctx, pb.Diary_ListEntries_FullMethodName, err)
	}
	return &pb.ListEntriesResponse{Entries: rpc.EntriesToProto(list)}, nil
}

func (s *GRPCServer) UpdateEntry(ctx context.Context, req *pb.UpdateEntryRequest) (*pb.Entry, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	u := rpc.UpdateFromProto(req)
	e, err := s.entries.Update(ctx, uid, u.ID, models.EntryFlags{IsFavorite: u.IsFavorite, AudioID: u.AudioID})
	if err != nil {
		return nil, s.toStatus(ctx, pb.Diary_UpdateEntry_FullMethodName, err)
	}
	return rpc.EntryToProto(*e), nil
}

func (s *GRPCServer) PinEntry(ctx context.Context, req *pb.PinEntryRequest) (*pb.PinEntryResponse, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	if req.GetPinned() {
		err = s.entries.Pin(ctx, uid, req.GetId())
	} else {
		err = s.entries.Unpin(ctx, uid, req.GetId())
	}
	if err != nil {
		return nil, s.toStatus(ctx, pb.Diary_PinEntry_FullMethodName, err)
	}
	return &pb.PinEntryResponse{}, nil
}

func (s *GRPCServer) DeleteEntry(ctx context.Context, req *pb.DeleteEntryRequest) (*pb.DeleteEntryResponse, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.entries.Delete(ctx, uid, req.GetId()); err != nil {
		return nil, s.toStatus(ctx, pb.Diary_DeleteEntry_FullMethodName, err)
	}
	return &pb.DeleteEntryResponse{}, nil
}

func (s *GRPCServer) GetAllowance(ctx context.Context, _ *pb.GetAllowanceRequest) (*pb.Allowance, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	a, err := s.companion.Allowance(ctx, uid)
	if err != nil {
		return nil, s.toStatus(ctx, pb.Diary_GetAllowance_FullMethodName, err)
	}
	return rpc.AllowanceToProto(a), nil
}

func (s *GRPCServer) Chat(ctx context.Context, req *pb.ChatRequest) (*pb.ChatResponse, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	r, err := s.companion.Reply(ctx, uid, req.GetText(), rpc.HistoryFromProto(req.GetHistory()), req.GetMode())
	if err != nil {
		return nil, s.toStatus(ctx, pb.Diary_Chat_FullMethodName, err)
	}
	return &pb.ChatResponse{Reply: r.Text, Allowed: r.Allowed, Remaining: int32(r.Remaining), Fallback: r.Fallback}, nil
}

func (s *GRPCServer) PresignAudioUpload(ctx context.Context, req *pb.PresignAudioRequest) (*pb.PresignAudioResponse, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	id, url, err := s.audio.PresignUpload(ctx, uid, req.GetAudioId())
	if err != nil {
		return nil, s.toStatus(ctx, pb.Diary_PresignAudioUpload_FullMethodName, err)
	}
	return &pb.PresignAudioResponse{AudioId: id, Url: url}, nil
}

func (s *GRPCServer) PresignAudioDownload(ctx context.Context, req *pb.PresignAudioRequest) (*pb.PresignAudioResponse, error) {
	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	url, err := s.audio.PresignDownload(ctx, uid, req.GetAudioId())
	if err != nil {
		return nil, s.toStatus(ctx, pb.Diary_PresignAudioDownload_FullMethodName, err)
	}
	return &pb.PresignAudioResponse{AudioId: req.GetAudioId(), Url: url}, nil
}
