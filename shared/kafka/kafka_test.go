package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johannkk1/MacroCharts/types"
)

var testTopics = Topics{Scorecards: "macro.scorecards", Refresh: "macro.refresh"}

func TestPublishSendsScorecardJSON(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var ev types.ScorecardEvent
		if err := json.Unmarshal(val, &ev); err != nil {
			return err
		}
		if ev.Country != "US" || ev.Regime != types.RegimeNeutral || ev.ArticleCount != 12 {
			return errors.New("unexpected event")
		}
		return nil
	})

	p := NewProducerWith(sp, testTopics)
	err := p.Publish(context.Background(), types.ScorecardEvent{
		RunID:        "run-1",
		Country:      "US",
		Score:        51.2,
		Regime:       types.RegimeNeutral,
		ArticleCount: 12,
		GeneratedAt:  time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestPublishWrapsSendFailure(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewProducerWith(sp, testTopics)
	err := p.RequestRefresh(context.Background(), types.RefreshRequest{Country: "DE"})
	require.Error(t, err)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	assert.Contains(t, err.Error(), "macro.refresh")
	require.NoError(t, p.Close())
}

func TestSendSkipsCancelledContext(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	p := NewProducerWith(sp, testTopics)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.SendJSON(ctx, "t", "k", map[string]string{"a": "b"}), context.Canceled)
	require.NoError(t, p.Close())
}

func TestNewProducerNeedsBrokers(t *testing.T) {
	_, err := NewProducer(nil, testTopics)
	require.Error(t, err)
}

func TestTypedHandler(t *testing.T) {
	var got []string
	h := &TypedMessageHandler[types.RefreshRequest]{
		Validate: func(r *types.RefreshRequest) bool { return r.Country != "" },
		Process: func(_ context.Context, r *types.RefreshRequest) error {
			if r.Country == "XX" {
				return errors.New("refresh failed")
			}
			got = append(got, r.Country)
			return nil
		},
		AlwaysMark: true,
	}

	tests := []struct {
		name    string
		payload string
		mark    bool
		wantErr bool
	}{
		{"valid", `{"country":"US"}`, true, false},
		{"undecodable", `{not json`, true, false},
		{"invalid", `{"country":""}`, true, false},
		{"process error", `{"country":"XX"}`, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mark, err := h.HandleMessage(context.Background(), []byte(tt.payload))
			assert.Equal(t, tt.mark, mark)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.Equal(t, []string{"US"}, got)
}

type fakeSession struct {
	sarama.ConsumerGroupSession
	ctx    context.Context
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	msgs chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.msgs }

func TestConsumeClaimMarksHandledMessages(t *testing.T) {
	h := &consumerGroupHandler{messageHandler: &TypedMessageHandler[types.RefreshRequest]{
		Process: func(_ context.Context, r *types.RefreshRequest) error {
			if r.Country == "FAIL" {
				return errors.New("nope")
			}
			return nil
		},
	}}

	claim := &fakeClaim{msgs: make(chan *sarama.ConsumerMessage, 3)}
	claim.msgs <- &sarama.ConsumerMessage{Offset: 1, Value: []byte(`{"country":"US"}`)}
	claim.msgs <- &sarama.ConsumerMessage{Offset: 2, Value: []byte(`{"country":"FAIL"}`)}
	claim.msgs <- &sarama.ConsumerMessage{Offset: 3, Value: []byte(`{"country":"JP"}`)}
	close(claim.msgs)

	session := &fakeSession{ctx: context.Background()}
	require.NoError(t, h.ConsumeClaim(session, claim))
	assert.Equal(t, []int64{1, 3}, session.marked)
}
