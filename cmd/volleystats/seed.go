package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/config"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/database"
	playerModel "github.com/marceldopr/Volleyball-stats-definitiu/internal/player/model"
	playerRepository "github.com/marceldopr/Volleyball-stats-definitiu/internal/player/repository"
	playerService "github.com/marceldopr/Volleyball-stats-definitiu/internal/player/service"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/policy"
	profileModel "github.com/marceldopr/Volleyball-stats-definitiu/internal/profile/model"
	rosterModel "github.com/marceldopr/Volleyball-stats-definitiu/internal/roster/model"
	rosterRepository "github.com/marceldopr/Volleyball-stats-definitiu/internal/roster/repository"
	rosterService "github.com/marceldopr/Volleyball-stats-definitiu/internal/roster/service"
	seasonModel "github.com/marceldopr/Volleyball-stats-definitiu/internal/season/model"
	seasonRepository "github.com/marceldopr/Volleyball-stats-definitiu/internal/season/repository"
	seasonService "github.com/marceldopr/Volleyball-stats-definitiu/internal/season/service"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store/gormstore"
	teamModel "github.com/marceldopr/Volleyball-stats-definitiu/internal/team/model"
	teamRepository "github.com/marceldopr/Volleyball-stats-definitiu/internal/team/repository"
	teamService "github.com/marceldopr/Volleyball-stats-definitiu/internal/team/service"
)

var seedOpts struct {
	club     string
	email    string
	password string
	fullName string
	role     string
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed a demo club with one account, a current season and a team",
	RunE:  runSeed,
}

func init() {
	f := seedCmd.Flags()
	f.StringVar(&seedOpts.club, "club", "CV Demo", "club name")
	f.StringVar(&seedOpts.email, "email", "director@cvdemo.es", "login email")
	f.StringVar(&seedOpts.password, "password", "volleystats", "login password")
	f.StringVar(&seedOpts.fullName, "name", "Direcció Tècnica", "profile full name")
	f.StringVar(&seedOpts.role, "role", string(profileModel.RoleDirectorTecnic), "profile role (director_tecnic, entrenador)")
	rootCmd.AddCommand(seedCmd)
}

var demoPlayers = []playerModel.CreatePlayerRequest{
	{FirstName: "Júlia", LastName: "Puig", MainPosition: "setter"},
	{FirstName: "Marta", LastName: "Ferrer", MainPosition: "middle_blocker"},
	{FirstName: "Paula", LastName: "Soler", MainPosition: "outside_hitter"},
	{FirstName: "Laia", LastName: "Vidal", MainPosition: "opposite"},
	{FirstName: "Clara", LastName: "Roca", MainPosition: "libero"},
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	role := profileModel.Role(seedOpts.role)
	if role != profileModel.RoleDirectorTecnic && role != profileModel.RoleEntrenador {
		return fmt.Errorf("invalid role %q", seedOpts.role)
	}
	if cfg.Store.Driver != config.StoreDriverPostgres {
		return fmt.Errorf("seed needs STORE_DRIVER=%s", config.StoreDriverPostgres)
	}

	ctx := cmd.Context()
	db, err := openDatabase(ctx, log)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	st := gormstore.New(db, log, gormstore.WithAuth(gormstore.AuthConfig{
		JWTSecret:  []byte(cfg.Store.JWTSecret),
		SessionTTL: cfg.Store.SessionTTL,
		Issuer:     "volleystats",
	}))

	userID, err := st.CreateUser(ctx, seedOpts.email, seedOpts.password)
	if store.IsUniqueViolation(err) {
		log.Infow("account already exists, skipping seed", "email", seedOpts.email)
		return nil
	}
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	clubID := uuid.NewString()
	if err := db.WithContext(ctx).Table("clubs").Create(map[string]any{"id": clubID, "name": seedOpts.club}).Error; err != nil {
		return fmt.Errorf("creating club: %w", err)
	}
	profile := profileModel.Profile{ID: userID, ClubID: clubID, FullName: seedOpts.fullName, Role: &role}
	if err := db.WithContext(ctx).Create(&profile).Error; err != nil {
		return fmt.Errorf("creating profile: %w", err)
	}

	scope, err := policy.NewClubScope(clubID)
	if err != nil {
		return err
	}

	seasonRepo := seasonRepository.New(st, log)
	playerRepo := playerRepository.New(st, log)
	seasons := seasonService.New(seasonRepo, clockwork.NewRealClock(), log)
	teams := teamService.New(teamRepository.New(st, log), seasonRepo, log)
	players := playerService.New(playerRepo, log)
	roster := rosterService.New(rosterRepository.New(st, log), playerRepo, log)

	season, err := seasons.CreateSeason(ctx, scope, &seasonModel.CreateSeasonRequest{})
	if err != nil {
		return fmt.Errorf("creating season: %w", err)
	}
	team, err := teams.CreateTeam(ctx, scope, &teamModel.CreateTeamRequest{Name: "Sènior Femení", Gender: teamModel.GenderFemale})
	if err != nil {
		return fmt.Errorf("creating team: %w", err)
	}

	for i := range demoPlayers {
		p, err := players.CreatePlayer(ctx, scope, &demoPlayers[i])
		if err != nil {
			return fmt.Errorf("creating player %s %s: %w", demoPlayers[i].FirstName, demoPlayers[i].LastName, err)
		}
		jersey := fmt.Sprint(i + 1)
		if _, err := roster.AddPlayer(ctx, scope, team.ID, &rosterModel.AddPlayerRequest{
			PlayerID:     p.ID,
			SeasonID:     season.ID,
			JerseyNumber: &jersey,
		}); err != nil {
			return fmt.Errorf("adding %s to roster: %w", p.FirstName, err)
		}
	}

	log.Infow("demo data seeded", "club_id", clubID, "season", season.Name, "team", team.Name)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n=== Demo Data Seeded ===\n")
	fmt.Fprintf(out, "Club:     %s (%s)\n", seedOpts.club, clubID)
	fmt.Fprintf(out, "Season:   %s\n", season.Name)
	fmt.Fprintf(out, "Team:     %s (%d players)\n", team.Name, len(demoPlayers))
	fmt.Fprintf(out, "Login:    %s / %s\n", seedOpts.email, seedOpts.password)
	return nil
}
