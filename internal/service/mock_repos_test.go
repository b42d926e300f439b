package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/Vectra777/module-intervenants/internal/model"
	"github.com/Vectra777/module-intervenants/internal/repository"
)

// ── Base mémoire partagée ──

// mockDB porte les trois tables en mémoire pour que les mocks reproduisent
// la cascade de suppression et les jointures des listes croisées.
type mockDB struct {
	intervenants map[uint]*model.Intervenant
	etudes       map[uint]*model.Etude
	affectations map[uint]*model.Affectation
	nextID       uint
}

func newMockDB() *mockDB {
	return &mockDB{
		intervenants: make(map[uint]*model.Intervenant),
		etudes:       make(map[uint]*model.Etude),
		affectations: make(map[uint]*model.Affectation),
	}
}

func (db *mockDB) newID() uint {
	db.nextID++
	return db.nextID
}

func (db *mockDB) cascadeDeleteAffectations(match func(*model.Affectation) bool) {
	for id, a := range db.affectations {
		if match(a) {
			delete(db.affectations, id)
		}
	}
}

// ── Mock IntervenantRepository ──

type mockIntervenantRepo struct {
	db *mockDB
}

func newMockIntervenantRepo(db *mockDB) *mockIntervenantRepo {
	return &mockIntervenantRepo{db: db}
}

func (m *mockIntervenantRepo) Create(_ context.Context, intervenant *model.Intervenant) error {
	intervenant.ID = m.db.newID()
	m.db.intervenants[intervenant.ID] = intervenant
	return nil
}

func (m *mockIntervenantRepo) GetByID(_ context.Context, id uint) (*model.Intervenant, error) {
	if it, ok := m.db.intervenants[id]; ok {
		copied := *it
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockIntervenantRepo) List(_ context.Context) ([]model.Intervenant, error) {
	result := make([]model.Intervenant, 0, len(m.db.intervenants))
	for _, it := range m.db.intervenants {
		result = append(result, *it)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *mockIntervenantRepo) Update(_ context.Context, intervenant *model.Intervenant) error {
	m.db.intervenants[intervenant.ID] = intervenant
	return nil
}

func (m *mockIntervenantRepo) Delete(_ context.Context, id uint) error {
	delete(m.db.intervenants, id)
	m.db.cascadeDeleteAffectations(func(a *model.Affectation) bool {
		return a.IntervenantID == id
	})
	return nil
}

func (m *mockIntervenantRepo) ListEtudes(_ context.Context, intervenantID uint) ([]model.Etude, error) {
	var result []model.Etude
	for _, a := range m.db.affectations {
		if a.IntervenantID != intervenantID {
			continue
		}
		if e, ok := m.db.etudes[a.EtudeID]; ok {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

// ── Mock EtudeRepository ──

type mockEtudeRepo struct {
	db *mockDB
}

func newMockEtudeRepo(db *mockDB) *mockEtudeRepo {
	return &mockEtudeRepo{db: db}
}

func (m *mockEtudeRepo) Create(_ context.Context, etude *model.Etude) error {
	etude.ID = m.db.newID()
	m.db.etudes[etude.ID] = etude
	return nil
}

func (m *mockEtudeRepo) GetByID(_ context.Context, id uint) (*model.Etude, error) {
	if e, ok := m.db.etudes[id]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEtudeRepo) List(_ context.Context) ([]model.Etude, error) {
	result := make([]model.Etude, 0, len(m.db.etudes))
	for _, e := range m.db.etudes {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *mockEtudeRepo) Update(_ context.Context, etude *model.Etude) error {
	m.db.etudes[etude.ID] = etude
	return nil
}

func (m *mockEtudeRepo) Delete(_ context.Context, id uint) error {
	delete(m.db.etudes, id)
	m.db.cascadeDeleteAffectations(func(a *model.Affectation) bool {
		return a.EtudeID == id
	})
	return nil
}

func (m *mockEtudeRepo) ListIntervenants(_ context.Context, etudeID uint) ([]model.Intervenant, error) {
	var result []model.Intervenant
	for _, a := range m.db.affectations {
		if a.EtudeID != etudeID {
			continue
		}
		if it, ok := m.db.intervenants[a.IntervenantID]; ok {
			result = append(result, *it)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

// ── Mock AffectationRepository ──

type mockAffectationRepo struct {
	db *mockDB

	// erreurs forcées pour simuler une course perdue sur la contrainte unique
	createErr error
	updateErr error
}

func newMockAffectationRepo(db *mockDB) *mockAffectationRepo {
	return &mockAffectationRepo{db: db}
}

func (m *mockAffectationRepo) Create(_ context.Context, affectation *model.Affectation) error {
	if m.createErr != nil {
		return m.createErr
	}
	affectation.ID = m.db.newID()
	m.db.affectations[affectation.ID] = affectation
	return nil
}

func (m *mockAffectationRepo) GetByID(_ context.Context, id uint) (*model.Affectation, error) {
	if a, ok := m.db.affectations[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAffectationRepo) GetByPair(_ context.Context, etudeID, intervenantID uint) (*model.Affectation, error) {
	for _, a := range m.db.affectations {
		if a.EtudeID == etudeID && a.IntervenantID == intervenantID {
			copied := *a
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAffectationRepo) List(_ context.Context) ([]model.Affectation, error) {
	result := make([]model.Affectation, 0, len(m.db.affectations))
	for _, a := range m.db.affectations {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *mockAffectationRepo) Update(_ context.Context, affectation *model.Affectation) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.db.affectations[affectation.ID] = affectation
	return nil
}

func (m *mockAffectationRepo) Delete(_ context.Context, id uint) error {
	delete(m.db.affectations, id)
	return nil
}

func (m *mockAffectationRepo) CostTotals(_ context.Context, etudeID uint) (*repository.CostTotals, error) {
	var totals repository.CostTotals
	for _, a := range m.db.affectations {
		if a.EtudeID != etudeID {
			continue
		}
		totals.TotalJEH += a.JEH
		if it, ok := m.db.intervenants[a.IntervenantID]; ok {
			totals.CoutTotal += a.JEH * it.TJM
		}
	}
	return &totals, nil
}

// ── Assemblage ──

func newMockRepository() (*repository.Repository, *mockDB) {
	db := newMockDB()
	affectationRepo := newMockAffectationRepo(db)
	repo := &repository.Repository{
		Intervenant: newMockIntervenantRepo(db),
		Etude:       newMockEtudeRepo(db),
		Affectation: affectationRepo,
	}
	return repo, db
}

// mockAffectations récupère le mock concret pour forcer des erreurs.
func mockAffectations(repo *repository.Repository) *mockAffectationRepo {
	return repo.Affectation.(*mockAffectationRepo)
}
