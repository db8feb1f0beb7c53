package messaging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Actions understood by the handler.
const (
	ActionMakeColor    = "makeColor"
	ActionShowPreview  = "showPreview"
	ActionClearPreview = "clearPreview"
	ActionUpdateStyles = "updateStyles"
	ActionSaveSettings = "saveSettings"
)

// Message is one request from a settings panel or a replayed script.
type Message struct {
	Action       string     `json:"action"`
	Mode         string     `json:"mode"`
	StartColor   string     `json:"startColor"`
	EndColor     string     `json:"endColor"`
	PreviewColor string     `json:"previewColor"`
	FontSize     Number     `json:"fontSize"`
	Steps        Number     `json:"steps"`
	Profile      string     `json:"profile"`
	Selection    *Selection `json:"selection,omitempty"`
}

// Selection describes the active range of a message. Selectors win over
// text matches when both are set.
type Selection struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Match    string `json:"match"`
	MatchEnd string `json:"matchEnd"`
}

// Number accepts a JSON number or a numeric string, as form inputs send
// numbers as text. Empty strings and null decode to zero.
type Number int

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(raw []byte) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*n = 0
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = 0
			return nil
		}
		trimmed = []byte(s)
	}

	var number json.Number
	if err := json.Unmarshal(trimmed, &number); err != nil {
		return fmt.Errorf("unsupported number format: %s", string(raw))
	}
	v, err := strconv.ParseFloat(number.String(), 64)
	if err != nil {
		return fmt.Errorf("unsupported number format: %s", string(raw))
	}
	*n = Number(int(v))
	return nil
}

// ParseMessage decodes one JSON message.
func ParseMessage(payload []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}
