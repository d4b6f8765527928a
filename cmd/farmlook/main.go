// Package main provides the CLI entrypoint for farmlook.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/farmlook/farmlook/internal/analysis"
	"github.com/farmlook/farmlook/internal/api"
	"github.com/farmlook/farmlook/internal/catalog"
	"github.com/farmlook/farmlook/internal/config"
	"github.com/farmlook/farmlook/internal/i18n"
	"github.com/farmlook/farmlook/internal/logging"
	"github.com/farmlook/farmlook/internal/model"
	"github.com/farmlook/farmlook/internal/session"
	"github.com/farmlook/farmlook/internal/store"
	"github.com/farmlook/farmlook/internal/tui"
)

const (
	envAPIURL = "FARMLOOK_API_URL"
	envDebug  = "FARMLOOK_DEBUG"
)

var (
	rootAPIURL string
	rootDebug  bool

	loginPhone string

	analyzeImage string
	analyzeCrop  string
	analyzeLang  string
)

func main() {
	// A .env next to the binary is a development convenience; absence
	// is not an error.
	_ = godotenv.Load()

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "farmlook",
		Short:         "Crop disease detection client",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTUICmd,
	}

	rootCmd.PersistentFlags().StringVar(&rootAPIURL, "api-url", config.DefaultAPIURL, "analysis backend base URL")
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "write a debug log file")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newReportsCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newLangCmd())

	return rootCmd
}

// appEnv bundles the opened backends shared by every command.
type appEnv struct {
	cfg    config.FileConfig
	store  *store.Store
	client *api.Client
	sess   *session.Manager
	log    *zap.Logger
}

// openEnv resolves settings with flag > environment > config file
// precedence, then opens the local database and the API client.
func openEnv(cmd *cobra.Command) (*appEnv, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if !cmd.Flags().Changed("api-url") {
		if v := os.Getenv(envAPIURL); v != "" {
			rootAPIURL = v
		} else if fileCfg.API.URL != nil {
			rootAPIURL = *fileCfg.API.URL
		}
	}
	if !cmd.Flags().Changed("debug") {
		if v := os.Getenv(envDebug); v == "1" || strings.EqualFold(v, "true") {
			rootDebug = true
		} else if fileCfg.UI.Debug != nil {
			rootDebug = *fileCfg.UI.Debug
		}
	}

	logger, err := logging.New(rootDebug, config.DefaultLogPath())
	if err != nil {
		return nil, err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	client := api.NewClient(rootAPIURL, logger)
	return &appEnv{
		cfg:    fileCfg,
		store:  st,
		client: client,
		sess:   session.NewManager(st, client),
		log:    logger,
	}, nil
}

func (e *appEnv) close() {
	if err := e.store.Close(); err != nil {
		logErrf("failed to close db: %v\n", err)
	}
	_ = e.log.Sync()
}

func runTUICmd(cmd *cobra.Command, _ []string) error {
	env, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	// A language set in the config file seeds the preference before
	// first use; a choice made in the app wins afterwards.
	if env.cfg.UI.Language != nil {
		if err := seedLanguage(env.store, *env.cfg.UI.Language); err != nil {
			return err
		}
	}

	app, err := tui.NewApp(tui.Deps{
		Store:   env.store,
		Session: env.sess,
		API:     env.client,
		Cache:   analysis.NewCache(),
		Logger:  env.log,
	})
	if err != nil {
		return fmt.Errorf("failed to build app: %w", err)
	}
	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// seedLanguage applies a config-file language only while no explicit
// in-app choice exists.
func seedLanguage(st *store.Store, raw string) error {
	lang := i18n.Lang(strings.ToLower(strings.TrimSpace(raw)))
	if !i18n.Valid(lang) {
		return fmt.Errorf("unknown language %q in config (available: english, hausa, yoruba, igbo, nupe)", raw)
	}
	ctx := context.Background()
	if _, chosen, err := st.Get(ctx, store.KeyHasSelectedLanguage); err != nil {
		return err
	} else if chosen {
		return nil
	}
	if err := i18n.Save(ctx, st, lang); err != nil {
		return err
	}
	return st.Set(ctx, store.KeyHasSelectedLanguage, "true")
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		Args:  cobra.NoArgs,
		RunE:  runLoginCmd,
	}
	cmd.Flags().StringVar(&loginPhone, "phone", "", "phone number (prompted when omitted)")
	return cmd
}

func runLoginCmd(cmd *cobra.Command, _ []string) error {
	env, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer env.close()

	phone := strings.TrimSpace(loginPhone)
	if phone == "" {
		fmt.Print("Phone number: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read phone: %w", err)
		}
		phone = strings.TrimSpace(line)
	}

	fmt.Print("Password: ")
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	user, err := env.sess.Login(context.Background(), phone, string(secret))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", user.Name, user.State)
	return nil
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()
			if err := env.sess.Logout(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()
			ctx := context.Background()
			if _, ok, err := env.sess.Token(ctx); err != nil {
				return err
			} else if !ok {
				return fmt.Errorf("not logged in")
			}
			user, ok, err := env.sess.User(ctx)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no stored profile")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", user.Name, user.State)
			return nil
		},
	}
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a crop image",
		Args:  cobra.NoArgs,
		RunE:  runAnalyzeCmd,
	}
	cmd.Flags().StringVar(&analyzeImage, "image", "", "path to the crop image (required)")
	cmd.Flags().StringVar(&analyzeCrop, "crop", "", "crop id, e.g. maize (required)")
	cmd.Flags().StringVar(&analyzeLang, "lang", "", "response language (default: stored preference)")
	_ = cmd.MarkFlagRequired("image")
	_ = cmd.MarkFlagRequired("crop")
	return cmd
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	env, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer env.close()
	ctx := context.Background()

	crop, ok := catalog.ByID(strings.ToLower(strings.TrimSpace(analyzeCrop)))
	if !ok {
		ids := make([]string, 0, len(catalog.Crops))
		for _, c := range catalog.Crops {
			ids = append(ids, c.ID)
		}
		return fmt.Errorf("unknown crop %q (available: %s)", analyzeCrop, strings.Join(ids, ", "))
	}

	lang := i18n.Lang(strings.ToLower(strings.TrimSpace(analyzeLang)))
	if analyzeLang == "" {
		stored, err := i18n.Load(ctx, env.store)
		if err != nil {
			return err
		}
		lang = stored
	} else if !i18n.Valid(lang) {
		return fmt.Errorf("unknown language %q", analyzeLang)
	}

	result, err := env.client.Analyze(ctx, api.AnalyzeRequest{
		ImagePath: analyzeImage,
		CropID:    crop.ID,
		CropName:  crop.Title.English,
		Language:  string(lang),
	})
	if err != nil {
		return err
	}
	printResult(cmd, result, lang)
	return nil
}

func printResult(cmd *cobra.Command, result model.AnalysisResult, lang i18n.Lang) {
	out := cmd.OutOrStdout()
	if result.Rejected() {
		fmt.Fprintln(out, i18n.T(lang, i18n.KeyImageRejected))
		return
	}
	fmt.Fprintf(out, "%s: %s\n", i18n.T(lang, i18n.KeyCropType), result.CropIdentified)
	fmt.Fprintf(out, "%s: %.0f%%\n", i18n.T(lang, i18n.KeyConfidence), result.ConfidenceScore)
	fmt.Fprintln(out, result.HealthAssessment)
	if result.Healthy() {
		return
	}
	fmt.Fprintf(out, "\n%s\n%s\n", result.PrimaryDiagnosis.ProblemName, result.PrimaryDiagnosis.Description)
	for _, s := range result.PrimaryDiagnosis.Symptoms {
		fmt.Fprintf(out, "  - %s\n", s)
	}
	printPlanSection(out, i18n.T(lang, i18n.KeyImmediateActions), result.TreatmentPlan.ImmediateActions)
	printRemedySection(out, i18n.T(lang, i18n.KeyOrganicRemedies), result.TreatmentPlan.OrganicRemedies)
	printRemedySection(out, i18n.T(lang, i18n.KeyChemicalControls), result.TreatmentPlan.ChemicalControls)
}

func printPlanSection(out io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s\n", title)
	for _, item := range items {
		fmt.Fprintf(out, "  - %s\n", item)
	}
}

func printRemedySection(out io.Writer, title string, remedies []model.Remedy) {
	if len(remedies) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s\n", title)
	for _, r := range remedies {
		fmt.Fprintf(out, "  - %s: %s\n", r.Product, r.Application)
	}
}

func newReportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reports",
		Short: "List saved reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()
			ctx := context.Background()

			token, ok, err := env.sess.Token(ctx)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("not logged in (run: farmlook login)")
			}
			reports, err := env.client.ListReports(ctx, token)
			if err != nil {
				return err
			}
			if len(reports) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved reports found.")
				return nil
			}
			for _, r := range reports {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n",
					r.ID, r.CreatedDate(), r.Name, r.Crop, r.Result.Health)
			}
			return nil
		},
	}
}

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <id>",
		Short: "Show one saved report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()
			ctx := context.Background()

			token, ok, err := env.sess.Token(ctx)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("not logged in (run: farmlook login)")
			}
			report, err := env.client.GetReport(ctx, token, args[0])
			if err != nil {
				return err
			}
			lang, err := i18n.Load(ctx, env.store)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s, %s)\n", report.Name, report.Crop, report.CreatedDate())
			fmt.Fprintf(out, "%s: %.0f%%\n", i18n.T(lang, i18n.KeyConfidence), report.Result.Confidence)
			fmt.Fprintln(out, report.Result.Health)
			if report.Result.Health != model.HealthHealthy {
				fmt.Fprintf(out, "\n%s\n%s\n", report.Result.Diagnosis.ProblemName, report.Result.Diagnosis.Description)
				printPlanSection(out, i18n.T(lang, i18n.KeyImmediateActions), report.Result.TreatmentPlan.ImmediateActions)
				printRemedySection(out, i18n.T(lang, i18n.KeyOrganicRemedies), report.Result.TreatmentPlan.OrganicRemedies)
				printRemedySection(out, i18n.T(lang, i18n.KeyChemicalControls), report.Result.TreatmentPlan.ChemicalControls)
			}
			return nil
		},
	}
}

func newLangCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lang [language]",
		Short: "Show or set the UI language",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer env.close()
			ctx := context.Background()

			if len(args) == 0 {
				lang, err := i18n.Load(ctx, env.store)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(lang))
				return nil
			}
			lang := i18n.Lang(strings.ToLower(strings.TrimSpace(args[0])))
			if !i18n.Valid(lang) {
				return fmt.Errorf("unknown language %q (available: english, hausa, yoruba, igbo, nupe)", args[0])
			}
			if err := i18n.Save(ctx, env.store, lang); err != nil {
				return err
			}
			if err := env.store.Set(ctx, store.KeyHasSelectedLanguage, "true"); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(lang))
			return nil
		},
	}
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# farmlook configuration
# Uncomment a value to enable it. CLI flags override config values.

[api]
# url = %q

[ui]
# language = "english"   # english, hausa, yoruba, igbo, nupe
# debug = false          # write a debug log file
`, config.DefaultAPIURL)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
