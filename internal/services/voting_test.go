package services

import (
	"context"
	"errors"
	"github.com/14kear/movie-voting/internal/entity"
	"github.com/14kear/movie-voting/internal/services/mocks"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"log/slog"
	"testing"
	"time"
)

const adminPassword = "seice-admin"

var (
	testOptions = []string{"Moana", "Encanto", "Enrolados"}
	fixedNow    = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func newTestVoting(vs VoteStorage, ts TallyStorage, password string) *Voting {
	v := NewVoting(slog.New(slog.DiscardHandler), vs, ts, testOptions, password)
	v.now = func() time.Time { return fixedNow }
	return v
}

func TestVoting_SubmitVote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vs := mocks.NewMockVoteStorage(ctrl)
	ip := gofakeit.IPv4Address()

	vs.EXPECT().SaveVote(gomock.Any(), entity.Vote{
		Option:    "Moana",
		IPAddress: ip,
		CreatedAt: fixedNow,
	}).Return(int64(7), nil)

	v := newTestVoting(vs, nil, adminPassword)

	id, err := v.SubmitVote(context.Background(), "Moana", ip)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestVoting_SubmitVote_InvalidOption(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no storage calls are expected
	v := newTestVoting(mocks.NewMockVoteStorage(ctrl), mocks.NewMockTallyStorage(ctrl), adminPassword)

	for _, option := range []string{"", "moana", "MOANA", " Moana", "Moana ", "Frozen", gofakeit.Word() + "!"} {
		_, err := v.SubmitVote(context.Background(), option, gofakeit.IPv4Address())
		require.Error(t, err, option)
		assert.ErrorIs(t, err, ErrInvalidOption, option)
	}
}

func TestVoting_SubmitVote_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vs := mocks.NewMockVoteStorage(ctrl)
	vs.EXPECT().SaveVote(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection refused"))

	v := newTestVoting(vs, nil, adminPassword)

	_, err := v.SubmitVote(context.Background(), "Encanto", "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidOption)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestVoting_Results_Scenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := mocks.NewMockTallyStorage(ctrl)
	ts.EXPECT().Tallies(gomock.Any()).Return([]entity.Tally{
		{Option: "Moana", Count: 2},
		{Option: "Encanto", Count: 1},
		{Option: "Enrolados", Count: 0},
	}, int64(3), nil)

	v := newTestVoting(nil, ts, adminPassword)

	results, err := v.Results(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), results.Total)
	assert.Equal(t, []entity.OptionResult{
		{Option: "Moana", Count: 2, Percentage: 66.7},
		{Option: "Encanto", Count: 1, Percentage: 33.3},
		{Option: "Enrolados", Count: 0, Percentage: 0},
	}, results.Options)
}

func TestVoting_Results_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := mocks.NewMockTallyStorage(ctrl)
	ts.EXPECT().Tallies(gomock.Any()).Return([]entity.Tally{
		{Option: "Encanto"},
		{Option: "Enrolados"},
		{Option: "Moana"},
	}, int64(0), nil)

	v := newTestVoting(nil, ts, adminPassword)

	results, err := v.Results(context.Background())
	require.NoError(t, err)

	assert.Zero(t, results.Total)
	require.Len(t, results.Options, 3)
	for _, r := range results.Options {
		assert.Zero(t, r.Count)
		assert.Zero(t, r.Percentage)
	}
}

func TestVoting_Results_NoTallies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := mocks.NewMockTallyStorage(ctrl)
	ts.EXPECT().Tallies(gomock.Any()).Return(nil, int64(0), nil)

	v := newTestVoting(nil, ts, adminPassword)

	results, err := v.Results(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, results.Options)
	assert.Empty(t, results.Options)
}

func TestVoting_Results_PercentagesSumTo100(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := mocks.NewMockTallyStorage(ctrl)
	v := newTestVoting(nil, ts, adminPassword)

	for i := 0; i < 20; i++ {
		counts := []int64{
			int64(gofakeit.IntRange(0, 500)),
			int64(gofakeit.IntRange(0, 500)),
			int64(gofakeit.IntRange(1, 500)),
		}
		total := counts[0] + counts[1] + counts[2]

		ts.EXPECT().Tallies(gomock.Any()).Return([]entity.Tally{
			{Option: "Moana", Count: counts[0]},
			{Option: "Encanto", Count: counts[1]},
			{Option: "Enrolados", Count: counts[2]},
		}, total, nil)

		results, err := v.Results(context.Background())
		require.NoError(t, err)

		var sum float64
		for _, r := range results.Options {
			sum += r.Percentage
		}
		assert.InDelta(t, 100, sum, 0.2, "counts %v", counts)
	}
}

func TestVoting_Results_HidesRetiredOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := mocks.NewMockTallyStorage(ctrl)
	ts.EXPECT().Tallies(gomock.Any()).Return([]entity.Tally{
		{Option: "Frozen", Count: 5},
		{Option: "Moana", Count: 3},
		{Option: "Encanto", Count: 1},
		{Option: "Enrolados", Count: 0},
	}, int64(9), nil)

	v := newTestVoting(nil, ts, adminPassword)

	results, err := v.Results(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), results.Total)
	assert.Equal(t, []entity.OptionResult{
		{Option: "Moana", Count: 3, Percentage: 75},
		{Option: "Encanto", Count: 1, Percentage: 25},
		{Option: "Enrolados", Count: 0, Percentage: 0},
	}, results.Options)
}

func TestVoting_Results_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := mocks.NewMockTallyStorage(ctrl)
	ts.EXPECT().Tallies(gomock.Any()).Return(nil, int64(0), errors.New("timeout"))

	v := newTestVoting(nil, ts, adminPassword)

	_, err := v.Results(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestVoting_RecentVotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	votes := make([]entity.Vote, RecentVotesLimit+5)
	for i := range votes {
		votes[i] = entity.Vote{ID: int64(len(votes) - i), Option: "Moana", CreatedAt: fixedNow.Add(-time.Duration(i) * time.Second)}
	}

	vs := mocks.NewMockVoteStorage(ctrl)
	vs.EXPECT().RecentVotes(gomock.Any(), RecentVotesLimit).Return(votes, nil)

	v := newTestVoting(vs, nil, adminPassword)

	got, err := v.RecentVotes(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, RecentVotesLimit)
	assert.Equal(t, votes[0], got[0])
}

func TestVoting_RecentVotes_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vs := mocks.NewMockVoteStorage(ctrl)
	vs.EXPECT().RecentVotes(gomock.Any(), RecentVotesLimit).Return(nil, errors.New("broken pipe"))

	v := newTestVoting(vs, nil, adminPassword)

	_, err := v.RecentVotes(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestVoting_ResetVotes_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vs := mocks.NewMockVoteStorage(ctrl)
	vs.EXPECT().ResetVotes(gomock.Any()).Return(nil)

	v := newTestVoting(vs, nil, adminPassword)

	require.NoError(t, v.ResetVotes(context.Background(), adminPassword))
}

func TestVoting_ResetVotes_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v := newTestVoting(mocks.NewMockVoteStorage(ctrl), nil, adminPassword)

	for _, secret := range []string{"", "seice2026admin", adminPassword + " ", gofakeit.Password(true, true, true, false, false, 12)} {
		err := v.ResetVotes(context.Background(), secret)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnauthorized)
	}
}

func TestVoting_ResetVotes_NoConfiguredPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v := newTestVoting(mocks.NewMockVoteStorage(ctrl), nil, "")

	for _, secret := range []string{"", "seice2026admin"} {
		err := v.ResetVotes(context.Background(), secret)
		assert.ErrorIs(t, err, ErrUnauthorized)
	}
}

func TestVoting_ResetVotes_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vs := mocks.NewMockVoteStorage(ctrl)
	vs.EXPECT().ResetVotes(gomock.Any()).Return(errors.New("deadlock detected"))

	v := newTestVoting(vs, nil, adminPassword)

	err := v.ResetVotes(context.Background(), adminPassword)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "deadlock detected")
}

func TestVoting_SeedOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := mocks.NewMockTallyStorage(ctrl)
	ts.EXPECT().SeedOptions(gomock.Any(), testOptions).Return(nil)

	v := newTestVoting(nil, ts, adminPassword)

	require.NoError(t, v.SeedOptions(context.Background()))
}

func TestVoting_SeedOptions_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := mocks.NewMockTallyStorage(ctrl)
	ts.EXPECT().SeedOptions(gomock.Any(), gomock.Any()).Return(errors.New("relation \"tallies\" does not exist"))

	v := newTestVoting(nil, ts, adminPassword)

	err := v.SeedOptions(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tallies")
}

func TestVoting_Options_ReturnsCopy(t *testing.T) {
	v := newTestVoting(nil, nil, adminPassword)

	options := v.Options()
	options[0] = "Frozen"

	assert.Equal(t, testOptions, v.Options())
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		count, total int64
		want         float64
	}{
		{0, 0, 0},
		{5, 0, 0},
		{1, 3, 33.3},
		{2, 3, 66.7},
		{1, 8, 12.5},
		{1, 1, 100},
		{1, 7, 14.3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, percentage(tt.count, tt.total), "%d/%d", tt.count, tt.total)
	}
}
