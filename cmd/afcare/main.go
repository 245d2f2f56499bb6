// cmd/afcare/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"afcare-client/internal/api"
	"afcare-client/internal/common/config"
	"afcare-client/internal/common/logger"
	"afcare-client/internal/common/observability"
	"afcare-client/internal/common/validation"
	"afcare-client/internal/dealroom"
	"afcare-client/internal/matching"
	"afcare-client/internal/models"
	"afcare-client/internal/session"
	"afcare-client/pkg/catalog"
)

const usage = `Usage: afcare <command> [args]

Commands:
  login <username> <password>        obtain a bearer token
  logout                             discard the stored token
  register <username> <password>     create an account
  projects list [-sector S] [-country C]
  investors list
  investors create [-fund F] [-sectors S,S] [-countries C,C] [-instruments I,I]
  investors match <id> [-local]      rank projects for an investor
  verify submit -project N -level V0..V3 [score flags]
  dealroom show <id>                 print one deal room with children
  dealroom msg <id> <text>           post a chat message
`

func main() {
	bootLog := logger.New("info", "console")

	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			zapLog.Info("metrics server listening", zap.String("addr", cfg.Metrics.Listen))
			if err := http.ListenAndServe(cfg.Metrics.Listen, mux); err != nil {
				zapLog.Error("metrics server failed", zap.Error(err))
			}
		}()
	}

	store, err := session.FromConfig(cfg.Session)
	if err != nil {
		zapLog.Fatal("session store init failed", zap.Error(err))
	}

	sess := session.New(store, log)
	sess.OnLogout(func() {
		fmt.Fprintln(os.Stderr, "session expired, please log in again")
	})

	client := api.NewClient(api.Options{
		BaseURL: cfg.API.BaseURL,
		Timeout: time.Duration(cfg.API.Timeout) * time.Millisecond,
		Session: sess,
		Logger:  log,
		Obs:     obs,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, client, log, os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		zapLog.Fatal("command failed", zap.Error(err))
	}
}

func run(ctx context.Context, client *api.Client, log logger.Logger, args []string) error {
	if len(args) == 0 {
		return flag.ErrHelp
	}

	switch args[0] {
	case "login":
		if len(args) != 3 {
			return flag.ErrHelp
		}
		if _, err := client.Auth.Login(ctx, args[1], args[2]); err != nil {
			return err
		}
		fmt.Println("logged in")
		return nil

	case "logout":
		client.Auth.Logout(ctx)
		fmt.Println("logged out")
		return nil

	case "register":
		if len(args) != 3 {
			return flag.ErrHelp
		}
		user, err := client.Auth.Register(ctx, models.RegisterRequest{
			Username: args[1],
			Password: args[2],
			Role:     "developer",
		})
		if err != nil {
			return err
		}
		fmt.Printf("registered user %d (%s)\n", user.ID, user.Username)
		return nil

	case "projects":
		return runProjects(ctx, client, args[1:])

	case "investors":
		return runInvestors(ctx, client, args[1:])

	case "verify":
		return runVerify(ctx, client, args[1:])

	case "dealroom":
		return runDealRoom(ctx, client, log, args[1:])
	}

	return flag.ErrHelp
}

func runProjects(ctx context.Context, client *api.Client, args []string) error {
	if len(args) == 0 || args[0] != "list" {
		return flag.ErrHelp
	}

	fs := flag.NewFlagSet("projects list", flag.ContinueOnError)
	sector := fs.String("sector", "", "filter by sector")
	country := fs.String("country", "", "filter by country")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	filters := map[string]string{}
	if *sector != "" {
		filters["sector"] = *sector
	}
	if *country != "" {
		filters["country"] = *country
	}

	projects, err := client.Projects.List(ctx, filters)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSECTOR\tCOUNTRY\tSTAGE\tCAPEX")
	for _, p := range projects {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%.0f\n",
			p.ID, p.Name, p.Sector, p.Country, p.Stage, p.EstimatedCapex)
	}
	return w.Flush()
}

func runInvestors(ctx context.Context, client *api.Client, args []string) error {
	if len(args) == 0 {
		return flag.ErrHelp
	}

	switch args[0] {
	case "list":
		investors, err := client.Investors.List(ctx, nil)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tFUND\tTICKET MIN\tTICKET MAX\tSECTORS\tCOUNTRIES")
		for _, inv := range investors {
			fmt.Fprintf(w, "%d\t%s\t%.0f\t%.0f\t%s\t%s\n",
				inv.ID, inv.FundName, inv.TicketSizeMin, inv.TicketSizeMax,
				joinSectors(inv.SectorFocus), strings.Join(inv.CountryFocus, ","))
		}
		return w.Flush()

	case "create":
		fs := flag.NewFlagSet("investors create", flag.ContinueOnError)
		fund := fs.String("fund", "", "fund name")
		min := fs.Float64("min", 0, "minimum ticket size")
		max := fs.Float64("max", 0, "maximum ticket size")
		sectors := fs.String("sectors", "", "comma-separated sector focus")
		countries := fs.String("countries", "", "comma-separated country focus")
		instruments := fs.String("instruments", "", "comma-separated instruments")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		draft := api.InvestorDraft{
			FundName:       *fund,
			TicketSizeMin:  *min,
			TicketSizeMax:  *max,
			SectorsCSV:     *sectors,
			CountriesCSV:   *countries,
			InstrumentsCSV: *instruments,
		}
		inv, err := client.Investors.Create(ctx, draft.Build())
		if err != nil {
			return err
		}
		fmt.Printf("created investor %d (%s)\n", inv.ID, inv.FundName)
		return nil

	case "match":
		if len(args) < 2 {
			return flag.ErrHelp
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid investor id %q", args[1])
		}

		fs := flag.NewFlagSet("investors match", flag.ContinueOnError)
		local := fs.Bool("local", false, "rank client-side instead of calling the server")
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}

		if *local {
			return matchLocal(ctx, client, id)
		}
		return matchServer(ctx, client, id)
	}

	return flag.ErrHelp
}

func matchServer(ctx context.Context, client *api.Client, id int) error {
	result, err := client.Investors.Match(ctx, id)
	if err != nil {
		return err
	}
	ranked := make([]matching.ScoredMatch, len(result.Matches))
	for i, m := range result.Matches {
		ranked[i] = matching.ScoredMatch{
			ProjectID:      m.ProjectID,
			ProjectName:    m.ProjectName,
			Country:        m.Country,
			Sector:         m.Sector,
			EstimatedCapex: m.EstimatedCapex,
			MatchScore:     m.MatchScore,
			MatchReasons:   m.MatchReasons,
		}
	}
	printMatches(ranked)
	return nil
}

// matchLocal fetches the investor and the full project list and ranks them
// client-side with the same weights the server uses.
func matchLocal(ctx context.Context, client *api.Client, id int) error {
	investor, err := client.Investors.Get(ctx, id)
	if err != nil {
		return err
	}
	projects, err := client.Projects.List(ctx, nil)
	if err != nil {
		return err
	}
	printMatches(matching.Score(*investor, projects))
	return nil
}

func printMatches(matches []matching.ScoredMatch) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCORE\tPROJECT\tCOUNTRY\tSECTOR\tREASONS")
	for _, m := range matches {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			m.MatchScore, m.ProjectName, m.Country, m.Sector,
			strings.Join(m.MatchReasons, "; "))
	}
	w.Flush()
}

func runVerify(ctx context.Context, client *api.Client, args []string) error {
	if len(args) == 0 || args[0] != "submit" {
		return flag.ErrHelp
	}

	fs := flag.NewFlagSet("verify submit", flag.ContinueOnError)
	projectID := fs.Int("project", 0, "project id")
	level := fs.String("level", "", "verification level (V0..V3)")
	technical := fs.Int("technical", 0, "technical readiness score")
	financial := fs.Int("financial", 0, "financial robustness score")
	legal := fs.Int("legal", 0, "legal clarity score")
	esg := fs.Int("esg", 0, "ESG compliance score")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	parsed, err := models.ParseVerificationLevel(*level)
	if err != nil {
		return err
	}

	draft := models.Verification{
		ProjectID: *projectID,
		Level:     parsed,
	}
	if parsed == models.LevelV3BankabilityScreened {
		form := map[string]string{
			"technical_readiness":  strconv.Itoa(*technical),
			"financial_robustness": strconv.Itoa(*financial),
			"legal_clarity":        strconv.Itoa(*legal),
			"esg_compliance":       strconv.Itoa(*esg),
		}
		if result := validation.ValidateDraft(form, catalog.Default().BankabilityRules()); !result.Valid {
			return fmt.Errorf("invalid screening scores: %s", strings.Join(result.GetErrorMessages(), "; "))
		}
		draft.Bankability = &models.Bankability{
			TechnicalReadiness:  *technical,
			FinancialRobustness: *financial,
			LegalClarity:        *legal,
			ESGCompliance:       *esg,
		}
	}

	created, err := client.Verifications.Submit(ctx, draft)
	if err != nil {
		return err
	}

	fmt.Printf("verification %d recorded at %s\n", created.ID, created.Level)
	if created.Bankability != nil {
		fmt.Printf("overall score: %.2f\n", created.Bankability.OverallScore)
	}
	return nil
}

func runDealRoom(ctx context.Context, client *api.Client, log logger.Logger, args []string) error {
	if len(args) < 2 {
		return flag.ErrHelp
	}

	roomID, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid deal room id %q", args[1])
	}

	ctrl := dealroom.NewController(client.DealRooms, log)

	switch args[0] {
	case "show":
		if err := ctrl.Activate(ctx, roomID); err != nil {
			return err
		}
		defer ctrl.Deactivate()
		printRoom(ctrl)
		return nil

	case "msg":
		if len(args) < 3 {
			return flag.ErrHelp
		}
		if err := ctrl.Activate(ctx, roomID); err != nil {
			return err
		}
		defer ctrl.Deactivate()
		if err := ctrl.SendMessage(ctx, strings.Join(args[2:], " ")); err != nil {
			return err
		}
		fmt.Println("message sent")
		return nil
	}

	return flag.ErrHelp
}

func printRoom(ctrl *dealroom.Controller) {
	room := ctrl.Room()
	fmt.Printf("%s (#%d) status=%s deal=%.0f %s\n",
		room.Name, room.ID, room.Status, room.DealValue, room.DealCurrency)
	if room.Description != "" {
		fmt.Println(room.Description)
	}

	fmt.Printf("\nMembers (%d):\n", len(ctrl.Members()))
	for _, m := range ctrl.Members() {
		fmt.Printf("  %s <%s> role=%s nda=%v\n", m.UserName, m.UserEmail, m.Role, m.NDASigned)
	}

	fmt.Printf("\nDocuments (%d):\n", len(ctrl.Documents()))
	for _, d := range ctrl.Documents() {
		fmt.Printf("  [%d] %s (%s) v%d\n", d.ID, d.Title, d.DocumentType, d.Version)
	}

	fmt.Printf("\nMeetings (%d):\n", len(ctrl.Meetings()))
	for _, m := range ctrl.Meetings() {
		fmt.Printf("  [%d] %s at %s (%d min)\n", m.ID, m.Title, m.ScheduledAt, m.DurationMinutes)
	}

	fmt.Printf("\nMessages (%d):\n", len(ctrl.Messages()))
	for _, m := range ctrl.Messages() {
		fmt.Printf("  %s: %s\n", m.UserName, m.Message)
	}
}

func joinSectors(sectors []models.Sector) string {
	parts := make([]string, len(sectors))
	for i, s := range sectors {
		parts[i] = string(s)
	}
	return strings.Join(parts, ",")
}
