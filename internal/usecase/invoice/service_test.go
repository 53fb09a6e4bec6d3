package invoice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	customerdomain "kairo/backend/internal/domain/customer"
	domain "kairo/backend/internal/domain/invoice"
)

type fakeIssuedRepo struct {
	byID   map[string]*domain.Issued
	latest string
}

func newFakeIssuedRepo() *fakeIssuedRepo {
	return &fakeIssuedRepo{byID: map[string]*domain.Issued{}}
}

func (r *fakeIssuedRepo) Create(_ context.Context, inv *domain.Issued) error {
	for _, existing := range r.byID {
		if existing.InvoiceNumber == inv.InvoiceNumber {
			return domain.ErrDuplicateNumber
		}
	}
	clone := *inv
	r.byID[inv.ID] = &clone
	if inv.InvoiceNumber > r.latest {
		r.latest = inv.InvoiceNumber
	}
	return nil
}

func (r *fakeIssuedRepo) GetByID(_ context.Context, id string) (*domain.Issued, error) {
	inv, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *inv
	return &clone, nil
}

func (r *fakeIssuedRepo) List(_ context.Context) ([]*domain.Issued, error) {
	var out []*domain.Issued
	for _, inv := range r.byID {
		clone := *inv
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeIssuedRepo) ListByCustomer(_ context.Context, customerID string) ([]*domain.Issued, error) {
	var out []*domain.Issued
	for _, inv := range r.byID {
		if inv.CustomerID == customerID {
			clone := *inv
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeIssuedRepo) Update(_ context.Context, inv *domain.Issued) error {
	if _, ok := r.byID[inv.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *inv
	r.byID[inv.ID] = &clone
	return nil
}

func (r *fakeIssuedRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeIssuedRepo) LatestNumber(_ context.Context) (string, error) {
	if r.latest == "" {
		return "", domain.ErrNotFound
	}
	return r.latest, nil
}

type fakeReceivedRepo struct {
	byID map[string]*domain.Received
}

func newFakeReceivedRepo() *fakeReceivedRepo {
	return &fakeReceivedRepo{byID: map[string]*domain.Received{}}
}

func (r *fakeReceivedRepo) Create(_ context.Context, inv *domain.Received) error {
	clone := *inv
	r.byID[inv.ID] = &clone
	return nil
}

func (r *fakeReceivedRepo) GetByID(_ context.Context, id string) (*domain.Received, error) {
	inv, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *inv
	return &clone, nil
}

func (r *fakeReceivedRepo) List(_ context.Context) ([]*domain.Received, error) {
	var out []*domain.Received
	for _, inv := range r.byID {
		clone := *inv
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeReceivedRepo) Update(_ context.Context, inv *domain.Received) error {
	if _, ok := r.byID[inv.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *inv
	r.byID[inv.ID] = &clone
	return nil
}

func (r *fakeReceivedRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeCustomerRepo struct {
	ids map[string]bool
}

func (r *fakeCustomerRepo) Create(context.Context, *customerdomain.Customer) error { return nil }
func (r *fakeCustomerRepo) GetByID(_ context.Context, id string) (*customerdomain.Customer, error) {
	if !r.ids[id] {
		return nil, customerdomain.ErrNotFound
	}
	return &customerdomain.Customer{ID: id}, nil
}
func (r *fakeCustomerRepo) List(context.Context) ([]*customerdomain.Customer, error) {
	return nil, nil
}
func (r *fakeCustomerRepo) Update(context.Context, *customerdomain.Customer) error { return nil }
func (r *fakeCustomerRepo) Delete(context.Context, string) error                   { return nil }

func newTestService() (*Service, *fakeIssuedRepo) {
	issued := newFakeIssuedRepo()
	customers := &fakeCustomerRepo{ids: map[string]bool{"cust-1": true}}
	return NewService(issued, newFakeReceivedRepo(), customers), issued
}

func TestNextNumber(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService()

	number, err := svc.NextNumber(context.Background())
	require.NoError(t, err)
	require.Equal(t, "INV-0001", number)

	repo.latest = "INV-0041"
	number, err = svc.NextNumber(context.Background())
	require.NoError(t, err)
	require.Equal(t, "INV-0042", number)
}

func TestCreateIssuedAssignsSequentialNumbers(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	first, err := svc.CreateIssued(context.Background(), CreateIssuedInput{
		CustomerID: "cust-1",
		Amount:     120.50,
	})
	require.NoError(t, err)
	require.Equal(t, "INV-0001", first.InvoiceNumber)

	second, err := svc.CreateIssued(context.Background(), CreateIssuedInput{
		CustomerID: "cust-1",
		Amount:     99,
	})
	require.NoError(t, err)
	require.Equal(t, "INV-0002", second.InvoiceNumber)
}

func TestCreateIssuedRequiresExistingCustomer(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	_, err := svc.CreateIssued(context.Background(), CreateIssuedInput{
		CustomerID: "cust-404",
		Amount:     10,
	})
	require.ErrorIs(t, err, customerdomain.ErrNotFound)
}

func TestMarkPaidAndCancel(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	inv, err := svc.CreateIssued(context.Background(), CreateIssuedInput{
		CustomerID: "cust-1",
		Amount:     10,
	})
	require.NoError(t, err)

	paid, err := svc.MarkPaid(context.Background(), inv.ID)
	require.NoError(t, err)
	require.True(t, paid.Paid)

	cancelled, err := svc.Cancel(context.Background(), inv.ID)
	require.NoError(t, err)
	require.True(t, cancelled.Cancelled)

	// A cancelled invoice can no longer be settled.
	_, err = svc.MarkPaid(context.Background(), inv.ID)
	require.ErrorIs(t, err, domain.ErrCancelled)
}

func TestUpdateIssued(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	inv, err := svc.CreateIssued(context.Background(), CreateIssuedInput{
		CustomerID:     "cust-1",
		Amount:         100,
		AdvancePayment: 20,
		Notes:          "draft",
	})
	require.NoError(t, err)

	amount := 150.0
	notes := "  final  "
	updated, err := svc.UpdateIssued(context.Background(), inv.ID, UpdateIssuedInput{
		Amount: &amount,
		Notes:  &notes,
	})
	require.NoError(t, err)
	require.Equal(t, 150.0, updated.Amount)
	require.Equal(t, 20.0, updated.AdvancePayment, "omitted fields stay untouched")
	require.Equal(t, "final", updated.Notes)

	negative := -1.0
	_, err = svc.UpdateIssued(context.Background(), inv.ID, UpdateIssuedInput{Amount: &negative})
	require.Error(t, err)

	_, err = svc.UpdateIssued(context.Background(), "missing", UpdateIssuedInput{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateIssuedRejectsCancelled(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	inv, err := svc.CreateIssued(context.Background(), CreateIssuedInput{
		CustomerID: "cust-1",
		Amount:     10,
	})
	require.NoError(t, err)
	_, err = svc.Cancel(context.Background(), inv.ID)
	require.NoError(t, err)

	amount := 42.0
	_, err = svc.UpdateIssued(context.Background(), inv.ID, UpdateIssuedInput{Amount: &amount})
	require.ErrorIs(t, err, domain.ErrCancelled)
}

func TestUpdateReceived(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	inv, err := svc.CreateReceived(context.Background(), CreateReceivedInput{
		InvoiceNumber: "SUP-77",
		SupplierID:    "supplier-1",
		Amount:        300,
	})
	require.NoError(t, err)

	amount := 275.0
	supplier := "supplier-2"
	updated, err := svc.UpdateReceived(context.Background(), inv.ID, UpdateReceivedInput{
		SupplierID: &supplier,
		Amount:     &amount,
	})
	require.NoError(t, err)
	require.Equal(t, "supplier-2", updated.SupplierID)
	require.Equal(t, 275.0, updated.Amount)
	require.Equal(t, "SUP-77", updated.InvoiceNumber, "omitted fields stay untouched")

	blank := "  "
	_, err = svc.UpdateReceived(context.Background(), inv.ID, UpdateReceivedInput{SupplierID: &blank})
	require.Error(t, err)

	_, err = svc.UpdateReceived(context.Background(), "missing", UpdateReceivedInput{})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
