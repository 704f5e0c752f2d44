package bot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"
)

type sent struct {
	chatID   int64
	threadID int
	text     string
}

type fakeSender struct {
	sent []sent
	err  error
}

func (f *fakeSender) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	user := to.(*tele.User)
	options := opts[0].(*tele.SendOptions)
	f.sent = append(f.sent, sent{chatID: user.ID, threadID: options.ThreadID, text: what.(string)})
	return &tele.Message{}, nil
}

func TestPrepareDestination(t *testing.T) {
	tests := []struct {
		name       string
		recipients string
		want       []Recipient
		wantError  bool
	}{
		{
			name:       "single pair",
			recipients: "123456,789",
			want:       []Recipient{{User: tele.User{ID: 123456}, ThreadID: 789}},
		},
		{
			name:       "several pairs and missing thread",
			recipients: "1,2; -100200 ;",
			want: []Recipient{
				{User: tele.User{ID: 1}, ThreadID: 2},
				{User: tele.User{ID: -100200}, ThreadID: 0},
			},
		},
		{name: "invalid chat id", recipients: "abc,1", wantError: true},
		{name: "invalid thread id", recipients: "1,x", wantError: true},
		{name: "empty", recipients: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := prepareDestination(tt.recipients)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateBot_InvalidRecipients(t *testing.T) {
	_, err := CreateBot("test_token", "not-a-chat")
	assert.ErrorContains(t, err, "invalid chat id")
}

func TestBot_Send(t *testing.T) {
	fake := &fakeSender{}
	b := &Bot{bot: fake, destination: []Recipient{
		{User: tele.User{ID: 1}, ThreadID: 10},
		{User: tele.User{ID: 2}},
	}}

	require.NoError(t, b.Send([]string{"a", "b"}))

	assert.Equal(t, []sent{
		{chatID: 1, threadID: 10, text: "a"},
		{chatID: 1, threadID: 10, text: "b"},
		{chatID: 2, threadID: 0, text: "a"},
		{chatID: 2, threadID: 0, text: "b"},
	}, fake.sent)
}

func TestBot_SendError(t *testing.T) {
	b := &Bot{bot: &fakeSender{err: errors.New("forbidden")}, destination: []Recipient{{User: tele.User{ID: 7}}}}

	err := b.Send([]string{"a"})

	assert.ErrorContains(t, err, "chat 7")
	assert.ErrorContains(t, err, "forbidden")
}
