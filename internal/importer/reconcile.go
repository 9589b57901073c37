package importer

import (
	"context"
	"errors"
	"fmt"

	"github.com/envelope-zero/transaction-import/internal/models"
	"golang.org/x/exp/slices"
)

// reconcileAttempts is how often the reconciliation is run when another import
// creates one of the categories at the same time.
const reconcileAttempts = 2

// Resolution maps category titles to their categories.
type Resolution map[string]models.Category

// Reconciliation is the result of ReconcileCategories.
type Reconciliation struct {
	Resolution Resolution        // All categories referenced by the import, by title
	Created    []models.Category // Categories created by the import, in order of first reference
	Existing   []models.Category // Categories that existed before the import
}

// ReconcileCategories makes sure that a category exists for every title.
//
// Titles are deduplicated, then existing categories are looked up with one
// store call and all missing ones are created with one store call. Every
// title is created at most once.
//
// If the insert fails because another import created one of the titles in the
// meantime, the reconciliation is run again once.
func ReconcileCategories(ctx context.Context, store CategoryStore, titles []string) (Reconciliation, error) {
	var err error
	var r Reconciliation

	for range reconcileAttempts {
		r, err = reconcile(ctx, store, titles)
		if !errors.Is(err, models.ErrCategoryTitleNotUnique) {
			break
		}
	}

	return r, err
}

func reconcile(ctx context.Context, store CategoryStore, titles []string) (Reconciliation, error) {
	titles = distinct(titles)

	existing, err := store.FindCategoriesByTitle(ctx, titles)
	if err != nil {
		return Reconciliation{}, fmt.Errorf("looking up existing categories: %w", err)
	}

	existingTitles := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		existingTitles[c.Title] = struct{}{}
	}

	created := newCategories(missingTitles(titles, existingTitles))
	err = store.SaveCategories(ctx, created)
	if err != nil {
		return Reconciliation{}, fmt.Errorf("creating categories: %w", err)
	}

	resolution := make(Resolution, len(created)+len(existing))
	for _, c := range append(slices.Clone(created), existing...) {
		resolution[c.Title] = c
	}

	return Reconciliation{
		Resolution: resolution,
		Created:    created,
		Existing:   existing,
	}, nil
}

// distinct returns titles without duplicates, in order of their first occurrence.
func distinct(titles []string) []string {
	seen := make(map[string]struct{}, len(titles))
	unique := make([]string, 0, len(titles))
	for _, title := range titles {
		if _, ok := seen[title]; ok {
			continue
		}
		seen[title] = struct{}{}
		unique = append(unique, title)
	}

	return unique
}

// missingTitles returns all titles that are not in existing, keeping their order.
func missingTitles(titles []string, existing map[string]struct{}) []string {
	missing := make([]string, 0, len(titles))
	for _, title := range titles {
		if _, ok := existing[title]; ok {
			continue
		}
		missing = append(missing, title)
	}

	return missing
}

func newCategories(titles []string) []models.Category {
	categories := make([]models.Category, 0, len(titles))
	for _, title := range titles {
		categories = append(categories, models.Category{Title: title})
	}

	return categories
}
