// Package remote is the request/response adapter to the managed
// backend: durable records over REST plus the named remote procedures
// under /rpc. It implements contract.IDataPort.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"turnroom/contract"
	"turnroom/domain"
)

const defaultTimeout = 15 * time.Second

type HTTPPort struct {
	log     *slog.Logger
	baseURL string
	token   string
	client  *http.Client
}

var _ contract.IDataPort = (*HTTPPort)(nil)

func NewHTTPPort(log *slog.Logger, baseURL, token string) *HTTPPort {
	return &HTTPPort{
		log:     log,
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

func (p *HTTPPort) FetchMessages(ctx context.Context, roomID string, before *time.Time, limit int) ([]domain.Message, error) {
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	if before != nil {
		query.Set("before", before.UTC().Format(time.RFC3339Nano))
	}

	var out []domain.Message
	path := fmt.Sprintf("/rooms/%s/messages?%s", url.PathEscape(roomID), query.Encode())
	if err := p.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *HTTPPort) FetchReactions(ctx context.Context, messageIDs []string) ([]domain.Reaction, error) {
	var out []domain.Reaction
	body := map[string]any{"message_ids": messageIDs}
	if err := p.do(ctx, http.MethodPost, "/rpc/reactions", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *HTTPPort) FetchTurnSession(ctx context.Context, roomID string) (*domain.TurnSession, error) {
	var out *domain.TurnSession
	path := fmt.Sprintf("/rooms/%s/turn_session", url.PathEscape(roomID))
	if err := p.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *HTTPPort) FetchMembers(ctx context.Context, roomID string) ([]domain.Member, error) {
	var out []domain.Member
	path := fmt.Sprintf("/rooms/%s/members", url.PathEscape(roomID))
	if err := p.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *HTTPPort) FetchProfile(ctx context.Context, userID string) (domain.Member, error) {
	var out domain.Member
	path := fmt.Sprintf("/profiles/%s", url.PathEscape(userID))
	if err := p.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return domain.Member{}, err
	}
	return out, nil
}

func (p *HTTPPort) SendMessage(ctx context.Context, draft domain.Message) (domain.Message, error) {
	var out domain.Message
	body := map[string]any{
		"kind":        draft.Kind,
		"content":     draft.Content,
		"reply_to_id": draft.ReplyToID,
	}
	path := fmt.Sprintf("/rooms/%s/messages", url.PathEscape(draft.RoomID))
	if err := p.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return domain.Message{}, err
	}
	return out, nil
}

func (p *HTTPPort) ToggleReaction(ctx context.Context, messageID, emoji string) error {
	body := map[string]any{"message_id": messageID, "emoji": emoji}
	return p.do(ctx, http.MethodPost, "/rpc/toggle_reaction", body, nil)
}

func (p *HTTPPort) SubmitTurn(ctx context.Context, roomID, content string) error {
	body := map[string]any{"room_id": roomID, "content": content}
	return p.do(ctx, http.MethodPost, "/rpc/submit_turn", body, nil)
}

func (p *HTTPPort) SubmitPhotoTurn(ctx context.Context, roomID, imageURL string) error {
	body := map[string]any{"room_id": roomID, "image_url": imageURL}
	return p.do(ctx, http.MethodPost, "/rpc/submit_photo_turn", body, nil)
}

func (p *HTTPPort) NotifyNextTurn(ctx context.Context, roomID string) error {
	body := map[string]any{"room_id": roomID}
	return p.do(ctx, http.MethodPost, "/rpc/notify_next_turn", body, nil)
}

func (p *HTTPPort) Nudge(ctx context.Context, roomID, userID string) error {
	body := map[string]any{"room_id": roomID, "user_id": userID}
	return p.do(ctx, http.MethodPost, "/rpc/nudge", body, nil)
}

func (p *HTTPPort) MarkSeen(ctx context.Context, messageIDs []string) error {
	body := map[string]any{"message_ids": messageIDs}
	return p.do(ctx, http.MethodPost, "/rpc/mark_seen", body, nil)
}

func (p *HTTPPort) GetSeenCounts(ctx context.Context, messageIDs []string) ([]domain.SeenCount, error) {
	var out []domain.SeenCount
	body := map[string]any{"message_ids": messageIDs}
	if err := p.do(ctx, http.MethodPost, "/rpc/seen_counts", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// do issues one JSON round trip. Non-2xx responses surface the backend
// message so remote rejections reach the user verbatim.
func (p *HTTPPort) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("backend rejected %s %s: %s (%d)",
			method, path, strings.TrimSpace(string(payload)), resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
