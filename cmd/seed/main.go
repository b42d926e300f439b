package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Vectra777/module-intervenants/config"
	"github.com/Vectra777/module-intervenants/internal/model"
	"github.com/Vectra777/module-intervenants/pkg/database"
	applogger "github.com/Vectra777/module-intervenants/pkg/logger"
)

// Jeu de données de démonstration. Idempotent : si des intervenants et
// des études existent déjà, la seed est ignorée.
func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "chargement de la configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initialisation du logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("connexion à la base de données", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("récupération du sql.DB sous-jacent", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("migration de la base de données", zap.Error(err))
	}

	if err := seed(db, logger); err != nil {
		logger.Fatal("seed", zap.Error(err))
	}
}

func seed(db *gorm.DB, logger *zap.Logger) error {
	var nbIntervenants, nbEtudes int64
	if err := db.Model(&model.Intervenant{}).Count(&nbIntervenants).Error; err != nil {
		return err
	}
	if err := db.Model(&model.Etude{}).Count(&nbEtudes).Error; err != nil {
		return err
	}

	if nbIntervenants > 0 && nbEtudes > 0 {
		logger.Info("seed ignorée : des données existent déjà")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		intervenants := map[string]*model.Intervenant{}

		if nbIntervenants == 0 {
			intervenants = map[string]*model.Intervenant{
				"ines": {
					Nom:                "Ines Martin",
					Email:              ptr("ines.martin@sepefrei.fr"),
					Telephone:          ptr("0601020304"),
					Competences:        pq.StringArray{"React", "TypeScript", "UI"},
					Disponibilite:      model.DisponibiliteDisponible,
					NbJoursDisponibles: 4,
					TJM:                450,
				},
				"yanis": {
					Nom:                "Yanis Diallo",
					Email:              ptr("yanis.diallo@sepefrei.fr"),
					Telephone:          ptr("0605060708"),
					Competences:        pq.StringArray{"Python", "FastAPI", "SQL"},
					Disponibilite:      model.DisponibiliteOccupe,
					NbJoursDisponibles: 1,
					TJM:                520,
				},
				"sarah": {
					Nom:                "Sarah Benali",
					Email:              ptr("sarah.benali@sepefrei.fr"),
					Telephone:          ptr("0611121314"),
					Competences:        pq.StringArray{"Data", "Power BI", "Excel"},
					Disponibilite:      model.DisponibiliteIndisponible,
					NbJoursDisponibles: 0,
					TJM:                480,
				},
				"mehdi": {
					Nom:                "Mehdi Khelifi",
					Email:              ptr("mehdi.khelifi@sepefrei.fr"),
					Telephone:          ptr("0615151515"),
					Competences:        pq.StringArray{"DevOps", "Docker", "CI/CD"},
					Disponibilite:      model.DisponibiliteDisponible,
					NbJoursDisponibles: 5,
					TJM:                600,
				},
				"clara": {
					Nom:                "Clara Moreau",
					Email:              ptr("clara.moreau@sepefrei.fr"),
					Telephone:          ptr("0620202020"),
					Competences:        pq.StringArray{"Product", "Recueil besoin", "UX"},
					Disponibilite:      model.DisponibiliteDisponible,
					NbJoursDisponibles: 3,
					TJM:                430,
				},
				"amine": {
					Nom:                "Amine Bensaid",
					Email:              ptr("amine.bensaid@sepefrei.fr"),
					Telephone:          ptr("0630303030"),
					Competences:        pq.StringArray{"Java", "Spring", "PostgreSQL"},
					Disponibilite:      model.DisponibiliteOccupe,
					NbJoursDisponibles: 2,
					TJM:                540,
				},
				"lea": {
					Nom:                "Lea Garnier",
					Email:              ptr("lea.garnier@sepefrei.fr"),
					Telephone:          ptr("0640404040"),
					Competences:        pq.StringArray{"QA", "Tests API", "Cypress"},
					Disponibilite:      model.DisponibiliteDisponible,
					NbJoursDisponibles: 4,
					TJM:                410,
				},
				"hugo": {
					Nom:                "Hugo Perrin",
					Email:              ptr("hugo.perrin@sepefrei.fr"),
					Telephone:          ptr("0650505050"),
					Competences:        pq.StringArray{"Node.js", "React", "SQL"},
					Disponibilite:      model.DisponibiliteIndisponible,
					NbJoursDisponibles: 0,
					TJM:                470,
				},
			}
			for _, it := range intervenants {
				if err := tx.Create(it).Error; err != nil {
					return err
				}
			}
		}

		if nbEtudes == 0 {
			etudes := map[string]*model.Etude{
				"audit_crm": {
					Nom:         "Audit CRM",
					Description: ptr("Refonte du suivi client et process commercial."),
					DateDebut:   date(2026, 2, 1),
					DateFin:     date(2026, 4, 15),
				},
				"dashboard_rh": {
					Nom:         "Dashboard RH",
					Description: ptr("Tableau de bord RH et indicateurs staffing."),
					DateDebut:   date(2026, 2, 10),
					DateFin:     date(2026, 3, 30),
				},
				"bi_finance": {
					Nom:         "BI Finance",
					Description: ptr("Consolidation KPI finance et reporting automatisé."),
					DateDebut:   date(2026, 2, 15),
					DateFin:     date(2026, 5, 31),
				},
				"portail_alumni": {
					Nom:         "Portail Alumni",
					Description: ptr("Prototype d'espace alumni avec annuaire et actualités."),
					DateDebut:   date(2026, 3, 10),
					DateFin:     date(2026, 5, 10),
				},
				"facturation_auto": {
					Nom:         "Automatisation Facturation",
					Description: ptr("Automatisation des exports et contrôles de facturation interne."),
					DateDebut:   date(2026, 1, 20),
					DateFin:     date(2026, 3, 20),
				},
				"refonte_intranet": {
					Nom:         "Refonte Intranet",
					Description: ptr("Modernisation UI et simplification des accès internes."),
					DateDebut:   date(2025, 12, 1),
					DateFin:     date(2026, 2, 5),
				},
			}
			for _, e := range etudes {
				if err := tx.Create(e).Error; err != nil {
					return err
				}
			}

			// Affectations uniquement si les intervenants viennent d'être créés,
			// pour ne pas deviner des identifiants existants.
			if len(intervenants) > 0 {
				affectations := []*model.Affectation{
					{IntervenantID: intervenants["ines"].ID, EtudeID: etudes["audit_crm"].ID, JEH: 5,
						Phases: pq.StringArray{"Conception backend", "API CRUD"}},
					{IntervenantID: intervenants["yanis"].ID, EtudeID: etudes["audit_crm"].ID, JEH: 4,
						Phases: pq.StringArray{"Modelisation base de donnees", "Optimisation SQL"}},
					{IntervenantID: intervenants["clara"].ID, EtudeID: etudes["audit_crm"].ID, JEH: 2,
						Phases: pq.StringArray{"Ateliers besoins", "Recette fonctionnelle"}},
					{IntervenantID: intervenants["ines"].ID, EtudeID: etudes["dashboard_rh"].ID, JEH: 3,
						Phases: pq.StringArray{"Creation front", "Composants UI"}},
					{IntervenantID: intervenants["lea"].ID, EtudeID: etudes["dashboard_rh"].ID, JEH: 2,
						Phases: pq.StringArray{"Tests UI", "Recette"}},
					{IntervenantID: intervenants["sarah"].ID, EtudeID: etudes["bi_finance"].ID, JEH: 6,
						Phases: pq.StringArray{"Data prep", "Dashboard KPI"}},
					{IntervenantID: intervenants["amine"].ID, EtudeID: etudes["bi_finance"].ID, JEH: 4,
						Phases: pq.StringArray{"API integration", "Batch exports"}},
					{IntervenantID: intervenants["mehdi"].ID, EtudeID: etudes["facturation_auto"].ID, JEH: 4,
						Phases: pq.StringArray{"Dockerisation", "CI pipeline"}},
					{IntervenantID: intervenants["hugo"].ID, EtudeID: etudes["portail_alumni"].ID, JEH: 3,
						Phases: pq.StringArray{"Prototype React", "Navigation"}},
				}
				for _, a := range affectations {
					if err := tx.Create(a).Error; err != nil {
						return err
					}
				}
			}
		}

		logger.Info("seed terminée")
		return nil
	})
}

func ptr(s string) *string { return &s }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
