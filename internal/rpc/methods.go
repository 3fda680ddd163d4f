package rpc

import pb "github.com/dmitrijs2005/unsaid/internal/proto"

var ServiceName = pb.Diary_ServiceDesc.ServiceName

// PublicMethods can be called without an access token.
var PublicMethods = map[string]bool{
	pb.Diary_Register_FullMethodName:     true,
	pb.Diary_GetSalt_FullMethodName:      true,
	pb.Diary_Login_FullMethodName:        true,
	pb.Diary_RefreshToken_FullMethodName: true,
	pb.Diary_Ping_FullMethodName:         true,
}
