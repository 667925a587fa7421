package crm

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tamirban/tamirban-api/internal/application/dto"
	"github.com/tamirban/tamirban-api/internal/domain"
	"github.com/tamirban/tamirban-api/internal/domain/entity"
	"github.com/tamirban/tamirban-api/internal/domain/geo"
	"github.com/tamirban/tamirban-api/internal/domain/repository"
	"github.com/tamirban/tamirban-api/pkg/persiantext"
)

// DefaultNearbyRadiusMeters applies when a nearby search omits maxDistance.
const DefaultNearbyRadiusMeters = 10_000

// CustomerUseCase customer CRUD plus the filtered/nearby listing.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List returns one page of customers for the given filters.
//
// Two mutually exclusive retrieval modes:
//
//   - Standard: the store resolves the whole filter, sorted by creation time
//     descending; Total is the store count of everything matching.
//   - Nearby (filters.Nearby set): restricted to customers with a recorded
//     geoLocation; the page window is fetched first and the distance filter
//     and nearest-first sort run in application code over that window, so
//     Total counts only the survivors inside the fetched page. A page can
//     therefore come back under-filled when candidates spread across pages;
//     pushing the distance bound into the store query would fix that but
//     change observable counts, so the behavior is kept and documented.
func (uc *CustomerUseCase) List(ctx context.Context, filters dto.CustomerListFilters) (*dto.CustomerListResult, error) {
	if filters.Status != "" && !entity.ValidCustomerStatus(filters.Status) {
		return nil, domain.ErrInvalidStatus
	}
	if filters.Nearby != nil {
		if !finite(filters.Nearby.Latitude) || !finite(filters.Nearby.Longitude) {
			return nil, domain.ErrInvalidLocation
		}
	}
	filters.DefaultPage()

	f := repository.CustomerFilter{
		Status:     filters.Status,
		MarketerID: filters.MarketerID,
		City:       filters.City,
		Search:     persiantext.Fold(strings.TrimSpace(filters.Search)),
		Tags:       filters.Tags,
		RequireGeo: filters.Nearby != nil,
	}

	page, err := uc.repo.FindPage(ctx, f, filters.Skip(), int64(filters.Limit))
	if err != nil {
		return nil, err
	}

	if filters.Nearby == nil {
		total, err := uc.repo.Count(ctx, f)
		if err != nil {
			return nil, err
		}
		return &dto.CustomerListResult{Data: page, Total: total, Page: filters.Page, Limit: filters.Limit}, nil
	}

	data := nearbyFilterAndSort(page, filters.Nearby)
	return &dto.CustomerListResult{
		Data:  data,
		Total: int64(len(data)),
		Page:  filters.Page,
		Limit: filters.Limit,
	}, nil
}

// nearbyFilterAndSort drops customers beyond the radius (boundary inclusive)
// and orders the rest nearest first.
func nearbyFilterAndSort(page []*entity.Customer, nearby *dto.NearbyLocation) []*entity.Customer {
	maxDistance := nearby.MaxDistance
	if maxDistance <= 0 {
		maxDistance = DefaultNearbyRadiusMeters
	}

	type candidate struct {
		customer *entity.Customer
		distance float64
	}
	kept := make([]candidate, 0, len(page))
	for _, c := range page {
		if !c.HasGeoLocation() {
			continue
		}
		d := geo.DistanceMeters(nearby.Latitude, nearby.Longitude, c.GeoLocation.Latitude, c.GeoLocation.Longitude)
		if d <= maxDistance {
			kept = append(kept, candidate{customer: c, distance: d})
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].distance < kept[j].distance })

	data := make([]*entity.Customer, len(kept))
	for i, k := range kept {
		data[i] = k.customer
	}
	return data
}

// Create persists a new customer. Status defaults to ACTIVE; a provided
// geoLocation must carry finite coordinates.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*entity.Customer, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.CustomerStatusActive
	}
	if !entity.ValidCustomerStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	if in.GeoLocation != nil && (!finite(in.GeoLocation.Latitude) || !finite(in.GeoLocation.Longitude)) {
		return nil, domain.ErrInvalidLocation
	}
	now := time.Now()
	c := &entity.Customer{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		Code:               in.Code,
		Phones:             in.Phones,
		Email:              in.Email,
		City:               in.City,
		Province:           in.Province,
		Status:             status,
		Tags:               in.Tags,
		GeoLocation:        in.GeoLocation,
		AssignedMarketerID: in.AssignedMarketerID,
		MonthlyRevenue:     in.MonthlyRevenue,
		Grade:              in.Grade,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	c.SearchText = buildSearchText(c)
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get fetches one customer.
func (uc *CustomerUseCase) Get(ctx context.Context, id string) (*entity.Customer, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// Update applies a partial update; nil fields keep their stored value.
// AssignedMarketerID stays a weak reference: existence is not re-validated.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*entity.Customer, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != nil {
		if !entity.ValidCustomerStatus(*in.Status) {
			return nil, domain.ErrInvalidStatus
		}
		c.Status = *in.Status
	}
	if in.GeoLocation != nil {
		if !finite(in.GeoLocation.Latitude) || !finite(in.GeoLocation.Longitude) {
			return nil, domain.ErrInvalidLocation
		}
		c.GeoLocation = in.GeoLocation
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Code != nil {
		c.Code = *in.Code
	}
	if in.Phones != nil {
		c.Phones = *in.Phones
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.City != nil {
		c.City = *in.City
	}
	if in.Province != nil {
		c.Province = *in.Province
	}
	if in.Tags != nil {
		c.Tags = *in.Tags
	}
	if in.AssignedMarketerID != nil {
		c.AssignedMarketerID = *in.AssignedMarketerID
	}
	if in.MonthlyRevenue != nil {
		c.MonthlyRevenue = *in.MonthlyRevenue
	}
	if in.Grade != nil {
		c.Grade = *in.Grade
	}
	c.SearchText = buildSearchText(c)
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a customer.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// buildSearchText folds the searchable fields into one haystack so that
// search matches if ANY of name, code, phones or email contains the term.
func buildSearchText(c *entity.Customer) string {
	parts := make([]string, 0, 3+len(c.Phones))
	parts = append(parts, c.Name, c.Code, c.Email)
	parts = append(parts, c.Phones...)
	return persiantext.Fold(strings.Join(parts, " "))
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
