// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"parfum/internal/domain/entity"
	"parfum/internal/usecase"
)

// The view structs are the JSON projections of the domain entities. They exist
// so internal fields such as password hashes never reach a client.

// UserView is the public projection of an account.
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserView(user *entity.User) *UserView {
	if user == nil {
		return nil
	}

	return &UserView{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// UserSnapshotView is the minimal user projection attached to orders and reviews.
type UserSnapshotView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserSnapshotView(snapshot *entity.UserSnapshot) *UserSnapshotView {
	if snapshot == nil {
		return nil
	}

	return &UserSnapshotView{
		ID:    snapshot.ID.String(),
		Name:  snapshot.Name,
		Email: snapshot.Email,
	}
}

// PerfumeView is the public projection of a catalog item.
type PerfumeView struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Brand           string    `json:"brand"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	Stock           int       `json:"stock"`
	Size            float64   `json:"size"`
	Image           string    `json:"image"`
	Gender          string    `json:"gender"`
	Season          string    `json:"season"`
	Occasion        string    `json:"occasion"`
	Intensity       string    `json:"intensity"`
	FragranceFamily string    `json:"fragranceFamily"`
	TopNotes        []string  `json:"topNotes"`
	MiddleNotes     []string  `json:"middleNotes"`
	BaseNotes       []string  `json:"baseNotes"`
	Longevity       int       `json:"longevity"`
	Sillage         int       `json:"sillage"`
	AverageRating   float64   `json:"averageRating"`
	TotalReviews    int       `json:"totalReviews"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func toPerfumeView(perfume *entity.Perfume) *PerfumeView {
	if perfume == nil {
		return nil
	}

	return &PerfumeView{
		ID:              perfume.ID.String(),
		Name:            perfume.Name,
		Brand:           perfume.Brand,
		Description:     perfume.Description,
		Price:           perfume.Price,
		Stock:           perfume.Stock,
		Size:            perfume.Size,
		Image:           perfume.Image,
		Gender:          perfume.Gender.String(),
		Season:          perfume.Season.String(),
		Occasion:        perfume.Occasion.String(),
		Intensity:       perfume.Intensity.String(),
		FragranceFamily: perfume.FragranceFamily.String(),
		TopNotes:        perfume.TopNotes,
		MiddleNotes:     perfume.MiddleNotes,
		BaseNotes:       perfume.BaseNotes,
		Longevity:       perfume.Longevity,
		Sillage:         perfume.Sillage,
		AverageRating:   perfume.AverageRating,
		TotalReviews:    perfume.TotalReviews,
		CreatedAt:       perfume.CreatedAt,
		UpdatedAt:       perfume.UpdatedAt,
	}
}

func toPerfumeViews(perfumes []*entity.Perfume) []*PerfumeView {
	views := make([]*PerfumeView, 0, len(perfumes))
	for _, perfume := range perfumes {
		views = append(views, toPerfumeView(perfume))
	}

	return views
}

// OrderView is the public projection of an order.
type OrderView struct {
	ID            string            `json:"id"`
	PerfumeID     string            `json:"perfumeId"`
	Quantity      int               `json:"quantity"`
	Message       string            `json:"message,omitempty"`
	Address       string            `json:"address,omitempty"`
	CustomerName  string            `json:"customerName,omitempty"`
	CustomerPhone string            `json:"customerPhone,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	Perfume       *PerfumeView      `json:"perfume,omitempty"`
	User          *UserSnapshotView `json:"user,omitempty"`
}

func toOrderView(order *entity.Order) *OrderView {
	if order == nil {
		return nil
	}

	return &OrderView{
		ID:            order.ID.String(),
		PerfumeID:     order.PerfumeID.String(),
		Quantity:      order.Quantity,
		Message:       order.Message,
		Address:       order.Address,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		CreatedAt:     order.CreatedAt,
		Perfume:       toPerfumeView(order.Perfume),
		User:          toUserSnapshotView(order.User),
	}
}

func toOrderViews(orders []*entity.Order) []*OrderView {
	views := make([]*OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, toOrderView(order))
	}

	return views
}

// ReviewView is the public projection of a review.
type ReviewView struct {
	ID        string            `json:"id"`
	PerfumeID string            `json:"perfumeId"`
	Rating    int               `json:"rating"`
	Comment   string            `json:"comment,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	User      *UserSnapshotView `json:"user,omitempty"`
}

func toReviewView(review *entity.Review) *ReviewView {
	if review == nil {
		return nil
	}

	return &ReviewView{
		ID:        review.ID.String(),
		PerfumeID: review.PerfumeID.String(),
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
		User:      toUserSnapshotView(review.User),
	}
}

func toReviewViews(reviews []*entity.Review) []*ReviewView {
	views := make([]*ReviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, toReviewView(review))
	}

	return views
}

// PreferencesView is the public projection of a user's quiz answers.
type PreferencesView struct {
	PreferredGender     string    `json:"preferredGender"`
	FavoriteSeasons     []string  `json:"favoriteSeasons"`
	PreferredOccasions  []string  `json:"preferredOccasions"`
	FragranceFamilies   []string  `json:"fragranceFamilies"`
	IntensityPreference string    `json:"intensityPreference"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func toPreferencesView(prefs *entity.UserPreferences) *PreferencesView {
	if prefs == nil {
		return nil
	}

	return &PreferencesView{
		PreferredGender:     prefs.PreferredGender.String(),
		FavoriteSeasons:     prefs.SeasonStrings(),
		PreferredOccasions:  prefs.OccasionStrings(),
		FragranceFamilies:   prefs.FamilyStrings(),
		IntensityPreference: prefs.IntensityPreference.String(),
		CreatedAt:           prefs.CreatedAt,
		UpdatedAt:           prefs.UpdatedAt,
	}
}

// PaginationView is the pagination block attached to list responses.
type PaginationView struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// RecommendationsView is the recommendation listing payload.
type RecommendationsView struct {
	HasCompletedQuiz bool           `json:"hasCompletedQuiz"`
	Recommendations  []*PerfumeView `json:"recommendations"`
	TotalCount       int            `json:"totalCount"`
	Page             int            `json:"page"`
	PageSize         int            `json:"pageSize"`
	QuizURL          string         `json:"quizUrl,omitempty"`
}

func toRecommendationsView(output *usecase.RecommendationsOutput) *RecommendationsView {
	return &RecommendationsView{
		HasCompletedQuiz: output.HasCompletedQuiz,
		Recommendations:  toPerfumeViews(output.Recommendations),
		TotalCount:       output.TotalCount,
		Page:             output.Page,
		PageSize:         output.PageSize,
		QuizURL:          output.QuizURL,
	}
}
