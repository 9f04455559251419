package flash

import (
	"strings"
	"testing"
	"time"
)

func TestIssueAndParse(t *testing.T) {
	svc := NewService("secret", "cafe-fausse", time.Minute)
	msg := Message{Kind: KindSuccess, Text: "Merci! You're on the list."}

	token, err := svc.Issue(msg)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	got, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got != msg {
		t.Errorf("Parse() = %+v, want %+v", got, msg)
	}
}

func TestParseRejects(t *testing.T) {
	svc := NewService("secret", "cafe-fausse", time.Minute)
	token, err := svc.Issue(Message{Kind: KindSuccess, Text: "ok"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	expired, err := NewService("secret", "cafe-fausse", -time.Minute).Issue(Message{Text: "late"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	otherKey, _ := NewService("other", "cafe-fausse", time.Minute).Issue(Message{Text: "forged"})
	otherIssuer, _ := NewService("secret", "someone-else", time.Minute).Issue(Message{Text: "foreign"})

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "expired", token: expired, want: ErrExpiredToken},
		{name: "wrong key", token: otherKey, want: ErrInvalidToken},
		{name: "wrong issuer", token: otherIssuer, want: ErrInvalidToken},
		{name: "tampered", token: token[:strings.LastIndex(token, ".")] + otherKey[strings.LastIndex(otherKey, "."):], want: ErrInvalidToken},
		{name: "garbage", token: "not-a-token", want: ErrInvalidToken},
		{name: "empty", token: "", want: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Parse(tt.token); err != tt.want {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDefaultTTL(t *testing.T) {
	if got := NewService("s", "i", 0).TTL(); got != DefaultTTL {
		t.Errorf("TTL() = %v, want %v", got, DefaultTTL)
	}
}
