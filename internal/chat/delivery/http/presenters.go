package http

import "multimodal-chat/internal/chat"

// --- Request DTOs ---

type messageReq struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

func (r messageReq) validate() error { return nil }

func (r messageReq) toInput() chat.MessageInput {
	return chat.MessageInput{
		SessionID: r.SessionID,
		Text:      r.Text,
	}
}

// --- Response DTOs ---

type messageResp struct {
	SessionID   string `json:"session_id"`
	Intent      string `json:"intent"`
	ContentType string `json:"content_type"`
	Text        string `json:"text,omitempty"`
	AssetURL    string `json:"asset_url,omitempty"`
}

func (h *handler) newMessageResp(output chat.MessageOutput) messageResp {
	return messageResp{
		SessionID:   output.SessionID,
		Intent:      string(output.Intent),
		ContentType: string(output.ContentType),
		Text:        output.Text,
		AssetURL:    output.AssetURL,
	}
}

type transcribeResp struct {
	Text string `json:"text"`
}
