package main

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"

	"github.com/tatianab/homerun/internal/commentary"
	"github.com/tatianab/homerun/internal/config"
	"github.com/tatianab/homerun/internal/engine"
	"github.com/tatianab/homerun/internal/models"
	"github.com/tatianab/homerun/internal/questions"
	"github.com/tatianab/homerun/internal/random"
)

// Chance a simulated team knows the answer, and chance it fouls instead.
const (
	correctRate = 0.55
	foulRate    = 0.1
)

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	bank, err := questions.Load(cfg.BankPath)
	if err != nil {
		log.Fatalf("Failed to load question bank: %v", err)
	}
	rng, seed, err := random.New(cfg.Seed)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}
	board, err := questions.Deal(bank, cfg.Questions, rng)
	if err != nil {
		log.Fatalf("Failed to deal board: %v", err)
	}
	session, err := engine.NewSession(board, cfg.Innings)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	catalog, err := commentary.NewCatalog(cfg.Locale)
	if err != nil {
		log.Fatalf("Failed to load commentary: %v", err)
	}
	var announcer commentary.Announcer = catalog
	if cfg.UseGemini() {
		gemini, err := commentary.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, catalog)
		if err != nil {
			log.Fatalf("Failed to create Gemini announcer: %v", err)
		}
		defer gemini.Close()
		announcer = commentary.Fallback{Primary: gemini, Secondary: catalog}
	}

	teams := models.Teams{AwayName: cfg.AwayName, HomeName: cfg.HomeName}.Normalize(models.DefaultTeams())
	fmt.Printf("--- %s: %s vs %s, %d innings, seed %d ---\n", bank.Title, teams.AwayName, teams.HomeName, cfg.Innings, seed)
	fmt.Println(catalog.Opening(teams))

	for session.Phase() != engine.PhaseGameOver {
		events, err := playOne(session, rng)
		if err != nil {
			log.Fatalf("Play failed: %v", err)
		}
		text, err := announcer.Announce(ctx, commentary.Play{Events: events, State: session.State(), Teams: teams})
		if err != nil {
			log.Printf("commentary failed: %v", err)
		}
		st := session.State()
		fmt.Printf("[%s, %d out] %s\n", st.Clock, st.Half.Outs, text)
		session.FinishPlay()
	}

	fmt.Println()
	fmt.Print(lineScore(session.State(), teams))
	fmt.Printf("%d questions used\n", board.Answered())
}

// playOne picks a strategy and questions until one is answered for good.
func playOne(session *engine.Session, rng *rand.Rand) ([]engine.Event, error) {
	var events []engine.Event
	strategy := models.StrategyNormal
	if rng.IntN(3) == 0 {
		strategy = models.StrategyPower
	}
	selected, err := session.SelectStrategy(strategy)
	if err != nil {
		return nil, err
	}
	events = append(events, selected...)

	for {
		page := session.Board().Page()
		var open []models.Question
		for _, q := range page {
			if !session.Board().IsAnswered(q.ID) {
				open = append(open, q)
			}
		}
		if len(open) == 0 {
			return nil, questions.ErrBoardExhausted
		}
		q := open[rng.IntN(len(open))]
		if _, err := session.SelectQuestion(q.ID); err != nil {
			return nil, err
		}

		outcome := models.Incorrect
		switch roll := rng.Float64(); {
		case roll < foulRate:
			outcome = models.Foul
		case roll < foulRate+correctRate:
			outcome = models.Correct
		}
		answered, err := session.Answer(outcome)
		if err != nil {
			return nil, err
		}
		events = append(events, answered...)
		if engine.Consumes(outcome) {
			return events, nil
		}
	}
}

func lineScore(st engine.State, teams models.Teams) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s", "")
	for i := 1; i <= st.Clock.TotalInnings; i++ {
		fmt.Fprintf(&b, "%3d", i)
	}
	b.WriteString("    R   H\n")
	for _, team := range []models.Team{models.Away, models.Home} {
		fmt.Fprintf(&b, "%-12s", teams.Name(team))
		for i := 0; i < st.Clock.TotalInnings; i++ {
			runs := 0
			if i < len(st.Score.Innings) {
				runs = st.Score.Innings[i].Away
				if team == models.Home {
					runs = st.Score.Innings[i].Home
				}
			}
			fmt.Fprintf(&b, "%3d", runs)
		}
		fmt.Fprintf(&b, "%4d%4d\n", st.Score.Runs(team), st.Score.Hits(team))
	}
	fmt.Fprintf(&b, "Final: %s\n", st.Score.Result())
	return b.String()
}
