package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/eventpool/lottery/internal/drawer"
	"github.com/eventpool/lottery/internal/models"
	entrantRepo "github.com/eventpool/lottery/internal/repositories/entrant"
	eventRepo "github.com/eventpool/lottery/internal/repositories/event"
	profileRepo "github.com/eventpool/lottery/internal/repositories/profile"
	lotteryService "github.com/eventpool/lottery/internal/services/lottery"
	"github.com/eventpool/lottery/internal/services/notifier"
)

const usage = `Usage: lotteryd <command> [flags]

Commands:
  create-event    create a lottery event
  create-profile  create a user profile
  join            add an entrant to an event's waiting list
  draw            run the lottery over the waiting pool
  replace         run a replacement draw over never-drawn entrants
  accept          record an entrant accepting their invitation
  decline         record an entrant declining their invitation
  remove          remove a waiting entrant (organizer action)
  lists           print an event's four entrant lists
  history         print a user's event history
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	// Load .env if present; real env vars win
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc, profiles, err := buildService(ctx, logger)
	if err != nil {
		logger.Fatal("failed to initialize", zap.Error(err))
	}

	if err := run(ctx, svc, profiles, os.Args[1], os.Args[2:]); err != nil {
		logger.Fatal("command failed", zap.String("command", os.Args[1]), zap.Error(err))
	}
}

func buildService(ctx context.Context, logger *zap.Logger) (lotteryService.Service, profileRepo.Repository, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	events, err := eventRepo.NewRedis(&eventRepo.Config{RedisClient: redisClient})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create event repository: %w", err)
	}

	entrants, err := entrantRepo.NewRedis(&entrantRepo.Config{RedisClient: redisClient})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create entrant repository: %w", err)
	}

	profiles, err := profileRepo.NewRedis(&profileRepo.Config{RedisClient: redisClient})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create profile repository: %w", err)
	}

	dispatch, err := notifier.NewLog(logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create notifier: %w", err)
	}

	svc, err := lotteryService.New(&lotteryService.Config{
		EventRepo:   events,
		EntrantRepo: entrants,
		ProfileRepo: profiles,
		Drawer:      drawer.New(nil),
		Notifier:    dispatch,
		Logger:      logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create lottery service: %w", err)
	}

	return svc, profiles, nil
}

func run(ctx context.Context, svc lotteryService.Service, profiles profileRepo.Repository, command string, args []string) error {
	switch command {
	case "create-event":
		return runCreateEvent(ctx, svc, args)
	case "create-profile":
		return runCreateProfile(ctx, profiles, args)
	case "join":
		return runJoin(ctx, svc, args)
	case "draw":
		return runDraw(ctx, svc, args)
	case "replace":
		return runReplace(ctx, svc, args)
	case "accept":
		return runAccept(ctx, svc, args)
	case "decline":
		return runDecline(ctx, svc, args)
	case "remove":
		return runRemove(ctx, svc, args)
	case "lists":
		return runLists(ctx, svc, args)
	case "history":
		return runHistory(ctx, profiles, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func runCreateEvent(ctx context.Context, svc lotteryService.Service, args []string) error {
	fs := flag.NewFlagSet("create-event", flag.ExitOnError)
	name := fs.String("name", "", "event name")
	organizer := fs.String("organizer", "", "organizer user ID")
	capacity := fs.Int("capacity", 0, "event capacity")
	limit := fs.Int("waitlist-limit", 0, "waiting list limit (0 = unlimited)")
	openFor := fs.Duration("open-for", 72*time.Hour, "registration window length from now")
	fs.Parse(args)

	output, err := svc.CreateEvent(ctx, &lotteryService.CreateEventInput{
		Name:               *name,
		OrganizerID:        *organizer,
		Capacity:           *capacity,
		WaitingListLimit:   *limit,
		RegistrationOpens:  time.Now(),
		RegistrationCloses: time.Now().Add(*openFor),
	})
	if err != nil {
		return err
	}

	return printJSON(output.Event)
}

func runCreateProfile(ctx context.Context, profiles profileRepo.Repository, args []string) error {
	fs := flag.NewFlagSet("create-profile", flag.ExitOnError)
	userID := fs.String("user", "", "user ID")
	name := fs.String("name", "", "display name")
	fs.Parse(args)

	profile := &models.UserProfile{
		ID:                   *userID,
		Name:                 *name,
		NotificationsEnabled: true,
		CreatedAt:            time.Now(),
	}

	err := profiles.SaveProfile(ctx, &profileRepo.SaveProfileInput{Profile: profile})
	if err != nil {
		return err
	}

	return printJSON(profile)
}

func runJoin(ctx context.Context, svc lotteryService.Service, args []string) error {
	fs := flag.NewFlagSet("join", flag.ExitOnError)
	eventID := fs.String("event", "", "event ID")
	entrantID := fs.String("entrant", "", "entrant user ID")
	fs.Parse(args)

	output, err := svc.JoinWaitingList(ctx, &lotteryService.JoinWaitingListInput{
		EventID:   *eventID,
		EntrantID: *entrantID,
	})
	if err != nil {
		return err
	}

	return printJSON(output.Record)
}

func runDraw(ctx context.Context, svc lotteryService.Service, args []string) error {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	eventID := fs.String("event", "", "event ID")
	count := fs.Int("count", 0, "number of winners")
	fs.Parse(args)

	output, err := svc.ExecuteDraw(ctx, &lotteryService.ExecuteDrawInput{
		EventID:         *eventID,
		NumberOfWinners: *count,
	})
	if err != nil {
		return err
	}

	return printJSON(output.Result)
}

func runReplace(ctx context.Context, svc lotteryService.Service, args []string) error {
	fs := flag.NewFlagSet("replace", flag.ExitOnError)
	eventID := fs.String("event", "", "event ID")
	count := fs.Int("count", 0, "number of replacements")
	fs.Parse(args)

	output, err := svc.ExecuteReplacementDraw(ctx, &lotteryService.ExecuteReplacementDrawInput{
		EventID:              *eventID,
		NumberOfReplacements: *count,
	})
	if err != nil {
		return err
	}

	return printJSON(output.Result)
}

func runAccept(ctx context.Context, svc lotteryService.Service, args []string) error {
	fs := flag.NewFlagSet("accept", flag.ExitOnError)
	eventID := fs.String("event", "", "event ID")
	entrantID := fs.String("entrant", "", "entrant user ID")
	fs.Parse(args)

	_, err := svc.HandleAcceptance(ctx, &lotteryService.HandleAcceptanceInput{
		EventID:   *eventID,
		EntrantID: *entrantID,
	})
	return err
}

func runDecline(ctx context.Context, svc lotteryService.Service, args []string) error {
	fs := flag.NewFlagSet("decline", flag.ExitOnError)
	eventID := fs.String("event", "", "event ID")
	entrantID := fs.String("entrant", "", "entrant user ID")
	fs.Parse(args)

	output, err := svc.HandleDecline(ctx, &lotteryService.HandleDeclineInput{
		EventID:   *eventID,
		EntrantID: *entrantID,
	})
	if err != nil {
		return err
	}

	if output.ShouldTriggerReplacement {
		fmt.Println("spot released; a replacement draw may be run with: lotteryd replace")
	}
	return nil
}

func runRemove(ctx context.Context, svc lotteryService.Service, args []string) error {
	fs := flag.NewFlagSet("remove", flag.ExitOnError)
	eventID := fs.String("event", "", "event ID")
	entrantID := fs.String("entrant", "", "entrant user ID")
	reason := fs.String("reason", "", "removal reason")
	fs.Parse(args)

	_, err := svc.HandleOrganizerRemoval(ctx, &lotteryService.HandleOrganizerRemovalInput{
		EventID:   *eventID,
		EntrantID: *entrantID,
		Reason:    *reason,
	})
	return err
}

func runLists(ctx context.Context, svc lotteryService.Service, args []string) error {
	fs := flag.NewFlagSet("lists", flag.ExitOnError)
	eventID := fs.String("event", "", "event ID")
	fs.Parse(args)

	output, err := svc.GetEventLists(ctx, &lotteryService.GetEventListsInput{
		EventID: *eventID,
	})
	if err != nil {
		return err
	}

	return printJSON(output.Lists)
}

func runHistory(ctx context.Context, profiles profileRepo.Repository, args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	userID := fs.String("user", "", "user ID")
	fs.Parse(args)

	output, err := profiles.GetHistory(ctx, &profileRepo.GetHistoryInput{
		UserID: *userID,
	})
	if err != nil {
		return err
	}

	return printJSON(output.Entries)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
