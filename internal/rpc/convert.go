// Package rpc maps journal types onto the generated unsaid.v1 messages and
// lists the calls that need no access token.
package rpc

import (
	"github.com/dmitrijs2005/unsaid/internal/companion"
	"github.com/dmitrijs2005/unsaid/internal/diary"
	pb "github.com/dmitrijs2005/unsaid/internal/proto"
)

func EntryToProto(e diary.Entry) *pb.Entry {
	var emotions []string
	if len(e.Emotions) > 0 {
		emotions = make([]string, len(e.Emotions))
		for i, em := range e.Emotions {
			emotions[i] = string(em)
		}
	}
	return &pb.Entry{
		Id:          e.ID,
		TimestampMs: e.Timestamp,
		Content:     e.Content,
		Type:        string(e.Type),
		Emotions:    emotions,
		IsSilent:    e.IsSilent,
		IsPinned:    e.IsPinned,
		IsFavorite:  e.IsFavorite,
		AudioId:     e.AudioID,
	}
}

func EntryFromProto(p *pb.Entry) diary.Entry {
	var emotions []diary.Emotion
	if len(p.GetEmotions()) > 0 {
		emotions = make([]diary.Emotion, len(p.GetEmotions()))
		for i, em := range p.GetEmotions() {
			emotions[i] = diary.Emotion(em)
		}
	}
	return diary.Entry{
		ID:         p.GetId(),
		Timestamp:  p.GetTimestampMs(),
		Content:    p.GetContent(),
		Type:       diary.EntryType(p.GetType()),
		Emotions:   emotions,
		IsSilent:   p.GetIsSilent(),
		IsPinned:   p.GetIsPinned(),
		IsFavorite: p.GetIsFavorite(),
		AudioID:    p.GetAudioId(),
	}
}

func EntriesToProto(list []diary.Entry) []*pb.Entry {
	out := make([]*pb.Entry, 0, len(list))
	for _, e := range list {
		out = append(out, EntryToProto(e))
	}
	return out
}

// EntriesFromProto never returns nil so callers can tell an empty journal
// from a failed call.
func EntriesFromProto(list []*pb.Entry) []diary.Entry {
	out := make([]diary.Entry, 0, len(list))
	for _, p := range list {
		out = append(out, EntryFromProto(p))
	}
	return out
}

func HistoryToProto(history []companion.Message) []*pb.ChatMessage {
	if len(history) == 0 {
		return nil
	}
	out := make([]*pb.ChatMessage, len(history))
	for i, m := range history {
		out[i] = &pb.ChatMessage{Role: string(m.Role), Text: m.Text}
	}
	return out
}

func HistoryFromProto(history []*pb.ChatMessage) []companion.Message {
	if len(history) == 0 {
		return nil
	}
	out := make([]companion.Message, len(history))
	for i, m := range history {
		out[i] = companion.Message{Role: companion.Role(m.GetRole()), Text: m.GetText()}
	}
	return out
}

func AllowanceToProto(a Allowance) *pb.Allowance {
	return &pb.Allowance{
		Allowed:   a.Allowed,
		Remaining: int32(a.Remaining),
		Limit:     int32(a.Limit),
		Date:      a.Date,
	}
}

func AllowanceFromProto(p *pb.Allowance) Allowance {
	return Allowance{
		Allowed:   p.GetAllowed(),
		Remaining: int(p.GetRemaining()),
		Limit:     int(p.GetLimit()),
		Date:      p.GetDate(),
	}
}

func ProfileToProto(p Profile) *pb.Profile {
	return &pb.Profile{
		Username:     p.Username,
		Name:         p.Name,
		JoinedDateMs: p.JoinedDate,
		Streak:       int32(p.Streak),
		LastUsedMs:   p.LastUsed,
	}
}

func ProfileFromProto(p *pb.Profile) Profile {
	return Profile{
		Username: p.GetUsername(),
		UserProfile: diary.UserProfile{
			Name:       p.GetName(),
			JoinedDate: p.GetJoinedDateMs(),
			Streak:     int(p.GetStreak()),
			LastUsed:   p.GetLastUsedMs(),
		},
	}
}

func UpdateToProto(u UpdateEntryRequest) *pb.UpdateEntryRequest {
	return &pb.UpdateEntryRequest{Id: u.ID, IsFavorite: u.IsFavorite, AudioId: u.AudioID}
}

func UpdateFromProto(p *pb.UpdateEntryRequest) UpdateEntryRequest {
	return UpdateEntryRequest{ID: p.GetId(), IsFavorite: p.IsFavorite, AudioID: p.AudioId}
}

func ChatToProto(r ChatRequest) *pb.ChatRequest {
	return &pb.ChatRequest{Text: r.Text, History: HistoryToProto(r.History), Mode: r.Mode}
}

func ChatResponseFromProto(p *pb.ChatResponse) ChatResponse {
	return ChatResponse{
		Reply:     p.GetReply(),
		Allowed:   p.GetAllowed(),
		Remaining: int(p.GetRemaining()),
		Fallback:  p.GetFallback(),
	}
}
