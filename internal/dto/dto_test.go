package dto

import (
	"reflect"
	"testing"
)

func TestNormalizeList(t *testing.T) {
	cases := []struct {
		nom     string
		entree  []string
		attendu []string
	}{
		{"trim et vides écartés", []string{" React ", "", "  ", "SQL"}, []string{"React", "SQL"}},
		{"ordre et doublons conservés", []string{"QA", "React", "QA"}, []string{"QA", "React", "QA"}},
		{"nil devient liste vide", nil, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.nom, func(t *testing.T) {
			got := normalizeList(tc.entree)
			if got == nil {
				t.Fatal("résultat nil")
			}
			if !reflect.DeepEqual(got, tc.attendu) {
				t.Errorf("résultat = %v, attendu %v", got, tc.attendu)
			}
		})
	}
}

func TestCreateIntervenantNormalize(t *testing.T) {
	email := "  ines.martin@sepefrei.fr  "
	blanc := "   "
	req := &CreateIntervenantRequest{
		Nom:           "  Ines Martin  ",
		Email:         &email,
		Telephone:     &blanc,
		Competences:   []string{" React ", ""},
		Disponibilite: "Disponible",
		TJM:           450,
	}

	if err := req.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if req.Nom != "Ines Martin" {
		t.Errorf("nom = %q", req.Nom)
	}
	if req.Email == nil || *req.Email != "ines.martin@sepefrei.fr" {
		t.Errorf("email = %v", req.Email)
	}
	if req.Telephone != nil {
		t.Errorf("telephone blanc doit devenir absent, obtenu %q", *req.Telephone)
	}
	if len(req.Competences) != 1 || req.Competences[0] != "React" {
		t.Errorf("competences = %v", req.Competences)
	}
}

func TestCreateIntervenantNormalizeNomBlanc(t *testing.T) {
	req := &CreateIntervenantRequest{Nom: "   ", Disponibilite: "Disponible", TJM: 450}

	err := req.Normalize()
	if err == nil || err.Error() != "Le nom est obligatoire" {
		t.Fatalf("erreur = %v", err)
	}
}

func TestUpdateIntervenantNormalizeNomFourniBlanc(t *testing.T) {
	blanc := "  "
	req := &UpdateIntervenantRequest{Nom: &blanc}

	err := req.Normalize()
	if err == nil || err.Error() != "Le nom ne peut pas etre vide" {
		t.Fatalf("erreur = %v", err)
	}
}

func TestUpdateIntervenantNormalizeChampAbsentIntact(t *testing.T) {
	req := &UpdateIntervenantRequest{}

	if err := req.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if req.Nom != nil || req.Email != nil || req.Competences != nil {
		t.Errorf("champs absents modifiés: %+v", req)
	}
}

func TestTrimOptionalValeurBlancheDevientVideExplicite(t *testing.T) {
	blanc := "   "
	got := trimOptional(&blanc)
	if got == nil || *got != "" {
		t.Errorf("résultat = %v, attendu chaîne vide (signal d'effacement)", got)
	}
	if trimOptional(nil) != nil {
		t.Error("nil doit rester nil")
	}
}
