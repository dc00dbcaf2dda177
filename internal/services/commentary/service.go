package commentary

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/torneio/internal/models"
)

// service implements the Service interface
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// New creates a new commentary service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	r := cfg.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &service{
		rand: r,
	}, nil
}

// GetMatchMessage returns a line describing how a match was decided
func (s *service) GetMatchMessage(ctx context.Context, input *GetMatchMessageInput) (*GetMatchMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	w, l := input.WinnerName, input.LoserName

	var messages []string
	tone := ToneFunny

	switch {
	case input.DecidedBy == models.DecidedByID:
		tone = ToneNeutral
		messages = []string{
			fmt.Sprintf("%s and %s rolled %d rounds of dead heats. The bracket picks %s on seeding alone.", w, l, input.RollOffRounds, w),
			fmt.Sprintf("The dice refused to choose. %s advances on the lower number, %s goes home confused.", w, l),
			fmt.Sprintf("Nobody could separate them, so the paperwork did. %s moves on.", w),
		}
	case input.DecidedBy == models.DecidedByRollOff:
		tone = ToneDramatic
		messages = []string{
			fmt.Sprintf("Dead even at %d! %s out-rolls %s and survives on pure luck.", input.WinnerSkill, w, l),
			fmt.Sprintf("Identical skill, so it came down to the dice. %s wins the roll-off against %s.", w, l),
			fmt.Sprintf("%s and %s stare each other down at %d apiece. The dice favour %s.", w, l, input.WinnerSkill, w),
			fmt.Sprintf("A coin flip with extra steps: %s edges %s in the roll-off.", w, l),
		}
	case input.LoserSkill == 0:
		messages = []string{
			fmt.Sprintf("%s showed up with nothing left. %s walks through without breaking a sweat.", l, w),
			fmt.Sprintf("%s wins by walkover. %s was running on fumes.", w, l),
		}
	case input.WinnerSkill >= input.LoserSkill && input.WinnerSkill-input.LoserSkill <= input.WinnerSkill/10:
		tone = ToneDramatic
		messages = []string{
			fmt.Sprintf("By a whisker! %s (%d) squeaks past %s (%d).", w, input.WinnerSkill, l, input.LoserSkill),
			fmt.Sprintf("That was closer than it had any right to be. %s holds off %s and limps on with %d.", w, l, input.WinnerSkillAfter),
			fmt.Sprintf("%s nearly pulled it off, but %s hangs on.", l, w),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s flattens %s and marches on with %d skill.", w, l, input.WinnerSkillAfter),
			fmt.Sprintf("%s never stood a chance. %s advances.", l, w),
			fmt.Sprintf("Clinical from %s. %s is out.", w, l),
			fmt.Sprintf("%s (%d) outclasses %s (%d). Next!", w, input.WinnerSkill, l, input.LoserSkill),
			fmt.Sprintf("Somebody check on %s. %s did not hold back.", l, w),
		}
	}

	return &GetMatchMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetByeMessage returns a line for a participant advancing without a match
func (s *service) GetByeMessage(ctx context.Context, input *GetByeMessageInput) (*GetByeMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	messages := []string{
		fmt.Sprintf("%s gets a bye in round %d. Free real estate.", input.PlayerName, input.Round),
		fmt.Sprintf("Odd numbers favour %s, who skips round %d entirely.", input.PlayerName, input.Round),
		fmt.Sprintf("%s sits out round %d and saves their strength.", input.PlayerName, input.Round),
	}

	return &GetByeMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetChampionMessage returns a line crowning the tournament winner
func (s *service) GetChampionMessage(ctx context.Context, input *GetChampionMessageInput) (*GetChampionMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := input.ChampionName
	messages := []string{
		fmt.Sprintf("%s outlasted a field of %d and is your champion!", name, input.EntrantCount),
		fmt.Sprintf("%d wins, %d skill left in the tank. All hail %s!", input.Wins, input.RemainingSkill, name),
		fmt.Sprintf("Last one standing: %s. Bow accordingly.", name),
	}

	tone := ToneCelebration
	if input.Wins == 0 {
		tone = ToneFunny
		messages = []string{
			fmt.Sprintf("%s won the whole thing without playing a match. Legend? Fraud? Both.", name),
		}
	}

	return &GetChampionMessageOutput{
		Title:   "🏆 Champion",
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	switch input.ErrorType {
	case ErrorTypeTournamentExists:
		messages = []string{
			"There's already a tournament in this channel. Finish it or abandon it first.",
			"One bracket at a time! This channel already has a tournament going.",
		}
	case ErrorTypeNoTournament:
		messages = []string{
			"There's no tournament in this channel. Start one with `/torneio create`.",
			"Nothing to see here yet. Create a tournament first.",
		}
	case ErrorTypeAlreadyEntered:
		messages = []string{
			"You're already in this tournament. One entry per fighter!",
			"Cloning yourself is against the rules. You've already entered.",
		}
	case ErrorTypeNotEntered:
		messages = []string{
			"You never entered this tournament, so there's no history to show.",
			"No fights on record for you here. Enter the next one!",
		}
	case ErrorTypeTournamentFull:
		messages = []string{
			"The bracket is full. Catch the next one!",
			"No more room at the arena. This tournament is full.",
		}
	case ErrorTypeNotEnoughEntrants:
		messages = []string{
			"A tournament needs at least two fighters. Round up some victims first.",
			"You can't fight yourself. Get at least one more entrant.",
		}
	case ErrorTypeInvalidState:
		messages = []string{
			"The tournament isn't in the right state for that.",
			"Wrong time for that move. Check the tournament status.",
		}
	default:
		messages = []string{
			"Something went wrong. The arena staff have been notified.",
			"Oops! The bracket tripped over its own feet. Try again.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    ToneNeutral,
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return messages[s.rand.Intn(len(messages))]
}
