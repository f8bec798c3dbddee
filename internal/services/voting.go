package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"github.com/14kear/movie-voting/internal/entity"
	sl "github.com/14kear/sso-prettyslog/slogpretty/errors"
	"log/slog"
	"math"
	"slices"
	"time"
)

//go:generate mockgen -source=voting.go -destination=mocks/mock_voting.go -package=mocks

// RecentVotesLimit caps how many votes RecentVotes returns.
const RecentVotesLimit = 50

var (
	ErrInvalidOption = errors.New("invalid option")
	ErrUnauthorized  = errors.New("unauthorized")
)

type VoteStorage interface {
	SaveVote(ctx context.Context, vote entity.Vote) (int64, error)
	RecentVotes(ctx context.Context, limit int) ([]entity.Vote, error)
	ResetVotes(ctx context.Context) error
}

type TallyStorage interface {
	SeedOptions(ctx context.Context, options []string) error
	Tallies(ctx context.Context) ([]entity.Tally, int64, error)
}

type Voting struct {
	log           *slog.Logger
	voteStorage   VoteStorage
	tallyStorage  TallyStorage
	options       []string
	allowed       map[string]struct{}
	adminPassword string
	now           func() time.Time
}

// NewVoting returns a voting service accepting votes for the given options only.
// An empty adminPassword disables ResetVotes.
func NewVoting(
	log *slog.Logger,
	voteStorage VoteStorage,
	tallyStorage TallyStorage,
	options []string,
	adminPassword string,
) *Voting {
	allowed := make(map[string]struct{}, len(options))
	for _, option := range options {
		allowed[option] = struct{}{}
	}

	return &Voting{
		log:           log,
		voteStorage:   voteStorage,
		tallyStorage:  tallyStorage,
		options:       slices.Clone(options),
		allowed:       allowed,
		adminPassword: adminPassword,
		now:           time.Now,
	}
}

// Options returns the allow-list in configured order.
func (v *Voting) Options() []string {
	return slices.Clone(v.options)
}

// SeedOptions creates a zero tally for every option that has none yet.
func (v *Voting) SeedOptions(ctx context.Context) error {
	const op = "voting.SeedOptions"

	log := v.log.With(slog.String("op", op))

	if err := v.tallyStorage.SeedOptions(ctx, v.options); err != nil {
		log.Error("failed to seed options", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("options seeded", slog.Any("options", v.options))
	return nil
}

// SubmitVote records one vote for option. The option must match the allow-list exactly.
func (v *Voting) SubmitVote(ctx context.Context, option, sourceAddr string) (int64, error) {
	const op = "voting.SubmitVote"

	log := v.log.With(slog.String("op", op), slog.String("option", option))

	if _, ok := v.allowed[option]; !ok {
		log.Warn("rejected vote for unknown option")
		return 0, fmt.Errorf("%s: %w", op, ErrInvalidOption)
	}

	id, err := v.voteStorage.SaveVote(ctx, entity.Vote{
		Option:    option,
		IPAddress: sourceAddr,
		CreatedAt: v.now().UTC(),
	})
	if err != nil {
		log.Error("failed to save vote", sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("vote registered", slog.Int64("id", id))
	return id, nil
}

// Results returns the tallies of the configured options, highest count first.
func (v *Voting) Results(ctx context.Context) (entity.Results, error) {
	const op = "voting.Results"

	tallies, total, err := v.tallyStorage.Tallies(ctx)
	if err != nil {
		v.log.Error("failed to load tallies", slog.String("op", op), sl.Err(err))
		return entity.Results{}, fmt.Errorf("%s: %w", op, err)
	}

	// tallies left over from options removed from the allow-list are hidden
	// and their votes do not count towards the total
	for _, tally := range tallies {
		if _, ok := v.allowed[tally.Option]; !ok {
			total -= tally.Count
		}
	}

	results := entity.Results{
		Options: make([]entity.OptionResult, 0, len(tallies)),
		Total:   total,
	}
	for _, tally := range tallies {
		if _, ok := v.allowed[tally.Option]; !ok {
			continue
		}
		results.Options = append(results.Options, entity.OptionResult{
			Option:     tally.Option,
			Count:      tally.Count,
			Percentage: percentage(tally.Count, total),
		})
	}

	return results, nil
}

func (v *Voting) RecentVotes(ctx context.Context) ([]entity.Vote, error) {
	const op = "voting.RecentVotes"

	votes, err := v.voteStorage.RecentVotes(ctx, RecentVotesLimit)
	if err != nil {
		v.log.Error("failed to load recent votes", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(votes) > RecentVotesLimit {
		votes = votes[:RecentVotesLimit]
	}

	return votes, nil
}

// ResetVotes removes every vote and zeroes all tallies when secret matches the
// configured admin password.
func (v *Voting) ResetVotes(ctx context.Context, secret string) error {
	const op = "voting.ResetVotes"

	log := v.log.With(slog.String("op", op))

	if !v.authorized(secret) {
		log.Warn("reset rejected")
		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	if err := v.voteStorage.ResetVotes(ctx); err != nil {
		log.Error("failed to reset votes", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("votes reset")
	return nil
}

func (v *Voting) authorized(secret string) bool {
	if v.adminPassword == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(v.adminPassword)) == 1
}

// percentage is count/total*100 rounded to one decimal place, 0 for an empty poll.
func percentage(count, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)*1000/float64(total)) / 10
}
