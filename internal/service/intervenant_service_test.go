package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/Vectra777/module-intervenants/internal/dto"
	"github.com/Vectra777/module-intervenants/internal/repository"
	"github.com/Vectra777/module-intervenants/pkg/apperror"
)

// ── Aides de test ──

func setupTestIntervenantService() (IntervenantService, *repository.Repository) {
	repo, _ := newMockRepository()
	return NewIntervenantService(repo, zap.NewNop()), repo
}

func createTestIntervenant(t *testing.T, svc IntervenantService, nom string, competences []string, disponibilite string, tjm float64) *dto.IntervenantResponse {
	t.Helper()
	resp, err := svc.Create(context.Background(), &dto.CreateIntervenantRequest{
		Nom:           nom,
		Competences:   competences,
		Disponibilite: disponibilite,
		TJM:           tjm,
	})
	if err != nil {
		t.Fatalf("création de l'intervenant %q: %v", nom, err)
	}
	return resp
}

// ── Create ──

func TestIntervenantCreateAppliqueLeDefautNbJours(t *testing.T) {
	svc, _ := setupTestIntervenantService()

	resp := createTestIntervenant(t, svc, "Ines Martin", []string{"React"}, "Disponible", 450)

	if resp.NbJoursDisponibles != 5 {
		t.Errorf("nb_jours_disponibles = %d, attendu 5 par défaut", resp.NbJoursDisponibles)
	}
	if resp.ID == 0 {
		t.Error("identifiant non attribué")
	}
}

func TestIntervenantCreateRespecteNbJoursFourni(t *testing.T) {
	svc, _ := setupTestIntervenantService()

	zero := 0
	resp, err := svc.Create(context.Background(), &dto.CreateIntervenantRequest{
		Nom:                "Sarah Benali",
		Disponibilite:      "Indisponible",
		NbJoursDisponibles: &zero,
		TJM:                480,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.NbJoursDisponibles != 0 {
		t.Errorf("nb_jours_disponibles = %d, attendu 0 (fourni explicitement)", resp.NbJoursDisponibles)
	}
}

func TestIntervenantCreateCompetencesJamaisNulles(t *testing.T) {
	svc, _ := setupTestIntervenantService()

	resp := createTestIntervenant(t, svc, "Hugo Perrin", nil, "Disponible", 470)

	if resp.Competences == nil {
		t.Error("competences doit être une liste vide, pas nil")
	}
}

// ── GetByID ──

func TestIntervenantGetIntrouvable(t *testing.T) {
	svc, _ := setupTestIntervenantService()

	_, err := svc.GetByID(context.Background(), 999)
	if !apperror.IsNotFound(err) {
		t.Fatalf("erreur = %v, attendu NotFound", err)
	}
	if err.Error() != "Intervenant introuvable" {
		t.Errorf("message = %q", err.Error())
	}
}

// ── List et filtres ──

func TestIntervenantListOrdonneeParIDDecroissant(t *testing.T) {
	svc, _ := setupTestIntervenantService()

	first := createTestIntervenant(t, svc, "Premier", nil, "Disponible", 400)
	second := createTestIntervenant(t, svc, "Second", nil, "Disponible", 410)

	list, err := svc.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, attendu 2", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Errorf("ordre = [%d %d], attendu [%d %d]", list[0].ID, list[1].ID, second.ID, first.ID)
	}
}

func TestIntervenantListFiltresCombinesEnET(t *testing.T) {
	svc, _ := setupTestIntervenantService()

	createTestIntervenant(t, svc, "Ines Martin", []string{"React", "TypeScript"}, "Disponible", 450)
	createTestIntervenant(t, svc, "Hugo Perrin", []string{"Node.js", "React"}, "Indisponible", 470)
	createTestIntervenant(t, svc, "Yanis Diallo", []string{"Python", "SQL"}, "Disponible", 520)

	// competence + disponibilite : seul Ines satisfait les deux.
	list, err := svc.List(context.Background(), &dto.IntervenantListRequest{
		Competence:    "react",
		Disponibilite: "disponible",
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].Nom != "Ines Martin" {
		t.Fatalf("résultat = %+v, attendu uniquement Ines Martin", list)
	}
}

func TestIntervenantListFiltreDisponibiliteExactInsensibleCasse(t *testing.T) {
	svc, _ := setupTestIntervenantService()

	createTestIntervenant(t, svc, "Mehdi Khelifi", nil, "Disponible", 600)
	createTestIntervenant(t, svc, "Sarah Benali", nil, "Indisponible", 480)

	// correspondance exacte : "disponible" ne doit pas attraper "Indisponible"
	list, err := svc.List(context.Background(), &dto.IntervenantListRequest{Disponibilite: "DISPONIBLE"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].Nom != "Mehdi Khelifi" {
		t.Fatalf("résultat = %+v, attendu uniquement Mehdi Khelifi", list)
	}
}

func TestIntervenantListRechercheSurNomDisponibiliteEtCompetences(t *testing.T) {
	svc, _ := setupTestIntervenantService()

	createTestIntervenant(t, svc, "Clara Moreau", []string{"Product", "UX"}, "Disponible", 430)
	createTestIntervenant(t, svc, "Amine Bensaid", []string{"Java", "Spring"}, "Occupé", 540)

	cases := []struct {
		search  string
		attendu string
	}{
		{"moreau", "Clara Moreau"},  // sur le nom
		{"spring", "Amine Bensaid"}, // sur une compétence
		{"occupé", "Amine Bensaid"}, // sur la disponibilité
	}
	for _, tc := range cases {
		list, err := svc.List(context.Background(), &dto.IntervenantListRequest{Search: tc.search})
		if err != nil {
			t.Fatalf("List(%q): %v", tc.search, err)
		}
		if len(list) != 1 || list[0].Nom != tc.attendu {
			t.Errorf("search %q: résultat = %+v, attendu %s", tc.search, list, tc.attendu)
		}
	}
}

func TestIntervenantListFiltresBlancsIgnores(t *testing.T) {
	svc, _ := setupTestIntervenantService()

	createTestIntervenant(t, svc, "Lea Garnier", []string{"QA"}, "Disponible", 410)

	list, err := svc.List(context.Background(), &dto.IntervenantListRequest{
		Search:        "   ",
		Competence:    "",
		Disponibilite: "  ",
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("len = %d, attendu 1 (filtres blancs ignorés)", len(list))
	}
}

// ── Update ──

func TestIntervenantUpdatePartielConserveLesAutresChamps(t *testing.T) {
	svc, _ := setupTestIntervenantService()

	created := createTestIntervenant(t, svc, "Ines Martin", []string{"React"}, "Disponible", 450)

	tjm := 500.0
	resp, err := svc.Update(context.Background(), created.ID, &dto.UpdateIntervenantRequest{TJM: &tjm})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if resp.TJM != 500 {
		t.Errorf("tjm = %v, attendu 500", resp.TJM)
	}
	if resp.Nom != "Ines Martin" || resp.Disponibilite != "Disponible" {
		t.Errorf("champs non fournis modifiés: %+v", resp)
	}
	if len(resp.Competences) != 1 || resp.Competences[0] != "React" {
		t.Errorf("competences modifiées: %v", resp.Competences)
	}
}

func TestIntervenantUpdateChaineVideEffaceLeChampOptionnel(t *testing.T) {
	svc, _ := setupTestIntervenantService()

	email := "ines.martin@sepefrei.fr"
	created, err := svc.Create(context.Background(), &dto.CreateIntervenantRequest{
		Nom:           "Ines Martin",
		Email:         &email,
		Disponibilite: "Disponible",
		TJM:           450,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Email == nil {
		t.Fatal("email attendu après création")
	}

	vide := ""
	resp, err := svc.Update(context.Background(), created.ID, &dto.UpdateIntervenantRequest{Email: &vide})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if resp.Email != nil {
		t.Errorf("email = %q, attendu effacé", *resp.Email)
	}
}

func TestIntervenantUpdateIntrouvable(t *testing.T) {
	svc, _ := setupTestIntervenantService()

	nom := "Personne"
	_, err := svc.Update(context.Background(), 42, &dto.UpdateIntervenantRequest{Nom: &nom})
	if !apperror.IsNotFound(err) {
		t.Fatalf("erreur = %v, attendu NotFound", err)
	}
}

// ── Delete ──

func TestIntervenantDeleteSupprimeAussiSesAffectations(t *testing.T) {
	repo, db := newMockRepository()
	logger := zap.NewNop()
	intervenantSvc := NewIntervenantService(repo, logger)
	etudeSvc := NewEtudeService(repo, logger)
	affectationSvc := NewAffectationService(repo, logger)
	ctx := context.Background()

	it, err := intervenantSvc.Create(ctx, &dto.CreateIntervenantRequest{
		Nom: "Ines Martin", Disponibilite: "Disponible", TJM: 450,
	})
	if err != nil {
		t.Fatalf("Create intervenant: %v", err)
	}
	etude, err := etudeSvc.Create(ctx, &dto.CreateEtudeRequest{
		Nom: "Audit CRM", DateDebut: "2026-02-01", DateFin: "2026-04-15",
	})
	if err != nil {
		t.Fatalf("Create etude: %v", err)
	}
	if _, err := affectationSvc.Create(ctx, &dto.CreateAffectationRequest{
		IntervenantID: it.ID, EtudeID: etude.ID, JEH: 5,
	}); err != nil {
		t.Fatalf("Create affectation: %v", err)
	}

	if err := intervenantSvc.Delete(ctx, it.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if len(db.affectations) != 0 {
		t.Errorf("affectations restantes = %d, attendu 0 (cascade)", len(db.affectations))
	}
}

func TestIntervenantDeleteIntrouvable(t *testing.T) {
	svc, _ := setupTestIntervenantService()

	err := svc.Delete(context.Background(), 123)
	if !apperror.IsNotFound(err) {
		t.Fatalf("erreur = %v, attendu NotFound", err)
	}
}

// ── ListEtudes ──

func TestIntervenantListEtudesIntrouvable(t *testing.T) {
	svc, _ := setupTestIntervenantService()

	_, err := svc.ListEtudes(context.Background(), 7)
	if !apperror.IsNotFound(err) {
		t.Fatalf("erreur = %v, attendu NotFound", err)
	}
}
