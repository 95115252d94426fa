package model

import (
	"bytes"
	"encoding/json"
)

// Rule is a single notification rule declared on a pipe.
type Rule struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Pipe is a pipe definition as returned by the node API. Only the fields
// needed to build the notifications report are decoded.
type Pipe struct {
	ID     string     `json:"_id"`
	Config PipeConfig `json:"config"`
}

// PipeConfig holds the pipe's configuration variants.
type PipeConfig struct {
	Effective EffectiveConfig `json:"effective"`
}

// EffectiveConfig is the configuration the node actually runs.
type EffectiveConfig struct {
	Metadata *Metadata `json:"metadata,omitempty"`
}

// Metadata is the free-form metadata block of a pipe.
type Metadata struct {
	Notifications *Notifications `json:"notifications,omitempty"`
}

// UnmarshalJSON decodes the metadata block leniently: a metadata or
// notifications value that is not shaped as expected leaves the pipe without
// rules instead of failing the whole pipe list.
func (e *EffectiveConfig) UnmarshalJSON(data []byte) error {
	var raw struct {
		Metadata json.RawMessage `json:"metadata"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*e = EffectiveConfig{}
		return nil
	}
	e.Metadata = decodeMetadata(raw.Metadata)
	return nil
}

func decodeMetadata(data json.RawMessage) *Metadata {
	if isAbsent(data) {
		return nil
	}
	var raw struct {
		Notifications json.RawMessage `json:"notifications"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	meta := &Metadata{}
	if isAbsent(raw.Notifications) {
		return meta
	}
	var notifications Notifications
	if err := json.Unmarshal(raw.Notifications, &notifications); err == nil {
		meta.Notifications = &notifications
	}
	return meta
}

func isAbsent(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Notifications groups the notification rules of a pipe.
type Notifications struct {
	Rules []Rule `json:"rules"`
}

// NotificationRules returns the pipe's rules, or nil when the pipe has no
// metadata or notifications block.
func (p Pipe) NotificationRules() []Rule {
	meta := p.Config.Effective.Metadata
	if meta == nil || meta.Notifications == nil {
		return nil
	}
	return meta.Notifications.Rules
}

// HasNotifications reports whether the pipe declares at least one rule.
func (p Pipe) HasNotifications() bool {
	return len(p.NotificationRules()) > 0
}
