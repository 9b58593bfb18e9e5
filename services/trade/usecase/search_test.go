package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/tradepost/internal/pkg/apperrors"
	"github.com/piresc/tradepost/internal/pkg/models"
	"github.com/piresc/tradepost/internal/pkg/seed"
)

func seededEnv(t *testing.T) (*testEnv, []*models.Listing) {
	t.Helper()
	seeds, err := seed.Load("../../../configs/seed.yaml")
	require.NoError(t, err)

	env := newTestEnv(t)
	listings, err := env.svc.Seed(context.Background(), seeds)
	require.NoError(t, err)
	require.Len(t, listings, 4)
	return env, listings
}

func titles(listings []*models.Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.Title)
	}
	return out
}

func TestSearch(t *testing.T) {
	env, _ := seededEnv(t)

	zacian := "Shiny Galar Heroes Bundle - Lancer's Zacian & Arthur's Zamazenta"
	dreepy := "LF: Beast Ball Dreepy | FT: Dream Ball Eevee"
	worlds := "World Championships 2025 Event Codes Available"
	friends := "Friend Code Exchange - Looking for Daily Players"

	tests := []struct {
		name     string
		query    string
		category models.Category
		expected []string
	}{
		{"everything, newest first", "", models.CategoryAll, []string{zacian, dreepy, worlds, friends}},
		{"empty category means all", "", "", []string{zacian, dreepy, worlds, friends}},
		{"title match ignores case", "ZACIAN", models.CategoryAll, []string{zacian}},
		{"tag match", "complete-dex", models.CategoryAll, []string{friends}},
		{"proof text is not searched", "hidden ability", models.CategoryAll, nil},
		{"description words", "5iv dream ball", models.CategoryAll, []string{dreepy}},
		{"category filter", "", models.CategoryCodes, []string{zacian, worlds}},
		{"category is case-insensitive", "", "CODES", []string{zacian, worlds}},
		{"query and category", "shiny", models.CategoryCodes, []string{zacian}},
		{"query outside category", "dreepy", models.CategoryCodes, nil},
		{"whitespace is part of the query", " event ", models.CategoryAll, []string{worlds}},
		{"doubled whitespace is not collapsed", "  event  ", models.CategoryAll, nil},
		{"whitespace-only query matches literally", "  ", models.CategoryAll, nil},
		{"single space matches every listing", " ", models.CategoryAll, []string{zacian, dreepy, worlds, friends}},
		{"no match", "mewtwo", models.CategoryAll, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := env.svc.Search(context.Background(), tt.query, tt.category)

			require.NoError(t, err)
			if tt.expected == nil {
				assert.Empty(t, results)
				return
			}
			assert.Equal(t, tt.expected, titles(results))
		})
	}
}

func TestSearch_UnknownCategory(t *testing.T) {
	env, _ := seededEnv(t)

	results, err := env.svc.Search(context.Background(), "", "weapons")

	assert.Nil(t, results)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSearch_DecoratesProofFlags(t *testing.T) {
	env, _ := seededEnv(t)

	results, err := env.svc.Search(context.Background(), "", models.CategoryAll)
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.True(t, results[0].HasProof)
	assert.True(t, results[0].IsVerified)
	assert.True(t, results[1].HasProof)
	assert.False(t, results[1].IsVerified)
	assert.False(t, results[2].HasProof)
	assert.False(t, results[3].HasProof)
}

func TestAvailableModals(t *testing.T) {
	env, listings := seededEnv(t)
	ctx := context.Background()
	zacian, dreepy, worlds, friends := listings[0], listings[1], listings[2], listings[3]

	kinds := func(id string) []models.ModalKind {
		t.Helper()
		modals, err := env.svc.AvailableModals(ctx, id)
		require.NoError(t, err)
		out := make([]models.ModalKind, 0, len(modals))
		for _, m := range modals {
			out = append(out, m.Kind())
		}
		return out
	}

	assert.Equal(t, []models.ModalKind{models.ModalViewingProof, models.ModalSubmittingProof, models.ModalPayingFor}, kinds(zacian.ID))
	assert.Equal(t, []models.ModalKind{models.ModalViewingProof, models.ModalSubmittingProof}, kinds(dreepy.ID))
	assert.Equal(t, []models.ModalKind{models.ModalSubmittingProof, models.ModalPayingFor}, kinds(worlds.ID))
	assert.Equal(t, []models.ModalKind{models.ModalSubmittingProof}, kinds(friends.ID))

	_, err := env.svc.InitiatePayment(ctx, zacian.ID, "buyer@example.com")
	require.NoError(t, err)
	assert.Equal(t, []models.ModalKind{models.ModalViewingProof, models.ModalSubmittingProof}, kinds(zacian.ID),
		"no payment dialog while an attempt is in flight")

	_, err = env.svc.AvailableModals(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCatalog(t *testing.T) {
	env := newTestEnv(t)

	catalog := env.svc.Catalog()

	require.Len(t, catalog.Categories, 5)
	assert.Equal(t, models.CategoryCodes, catalog.Categories[0].ID)
	assert.Contains(t, catalog.Games, "Pokemon Go")
	assert.Contains(t, catalog.Flairs, "Master Ball")

	catalog.Games[0] = "mutated"
	assert.NotEqual(t, "mutated", env.svc.Catalog().Games[0])
}
