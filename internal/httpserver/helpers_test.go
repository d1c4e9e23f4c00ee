package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmtotable/storefront/internal/models"
	"github.com/farmtotable/storefront/internal/repo"
	"github.com/farmtotable/storefront/internal/service"
)

type testEnv struct {
	E     *echo.Echo
	Store *fakeStore
	P     *ProductHTTP
	V     *VariantHTTP
	U     *UserHTTP
	A     *AuthHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	e := echo.New()
	e.Validator = NewRequestValidator()

	store := newFakeStore()
	return &testEnv{
		E:     e,
		Store: store,
		P:     &ProductHTTP{Svc: &service.ProductService{Repo: store, Variants: store, Tx: store}},
		V:     &VariantHTTP{Svc: &service.VariantService{Repo: store}},
		U:     &UserHTTP{Svc: &service.UserService{Repo: store}},
		A:     &AuthHTTP{Tokens: &service.TokenService{Secret: []byte("test-access-secret")}},
	}
}

func (env *testEnv) doJSONRequest(t *testing.T, method, target string, body any) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, rdr)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return rec, env.E.NewContext(req, rec)
}

// httpCode unwraps the status a handler error would be rendered with.
func httpCode(t *testing.T, err error) int {
	t.Helper()

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	return he.Code
}

// fakeStore is an in-memory stand-in for the Mongo repo plus the
// transaction runner. Transactions just run their callback; the tests
// assert on the coordinator's protocol, not on real isolation.
type fakeStore struct {
	products map[primitive.ObjectID]models.Product
	variants map[primitive.ObjectID]models.ProductVariant
	users    map[primitive.ObjectID]models.User

	insertProductErr error
	insertUserErr    error
	insertVariantErr error
	noChangeOnUpdate bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: make(map[primitive.ObjectID]models.Product),
		variants: make(map[primitive.ObjectID]models.ProductVariant),
		users:    make(map[primitive.ObjectID]models.User),
	}
}

func (f *fakeStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeStore) InsertProduct(_ context.Context, p *models.Product) (primitive.ObjectID, error) {
	if f.insertProductErr != nil {
		return primitive.NilObjectID, f.insertProductErr
	}
	id := primitive.NewObjectID()
	p.ID = id
	f.products[id] = *p
	return id, nil
}

func (f *fakeStore) FindProduct(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &p, nil
}

func (f *fakeStore) ListProductsWithVariants(_ context.Context) ([]models.ProductWithVariants, error) {
	out := make([]models.ProductWithVariants, 0, len(f.products))
	for id, p := range f.products {
		joined := models.ProductWithVariants{Product: p, Variants: []models.ProductVariant{}}
		for _, v := range f.variants {
			if v.ProductID == id {
				joined.Variants = append(joined.Variants, v)
			}
		}
		out = append(out, joined)
	}
	return out, nil
}

func (f *fakeStore) UpdateProductFields(_ context.Context, id primitive.ObjectID, _ bson.M) (int64, int64, error) {
	if _, ok := f.products[id]; !ok {
		return 0, 0, nil
	}
	if f.noChangeOnUpdate {
		return 1, 0, nil
	}
	return 1, 1, nil
}

func (f *fakeStore) DeleteProduct(_ context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := f.products[id]; !ok {
		return 0, nil
	}
	delete(f.products, id)
	return 1, nil
}

func (f *fakeStore) InsertVariant(_ context.Context, v *models.ProductVariant) (primitive.ObjectID, error) {
	if f.insertVariantErr != nil {
		return primitive.NilObjectID, f.insertVariantErr
	}
	id := primitive.NewObjectID()
	v.ID = id
	f.variants[id] = *v
	return id, nil
}

func (f *fakeStore) InsertVariants(ctx context.Context, vs []models.ProductVariant) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(vs))
	for i := range vs {
		id, err := f.InsertVariant(ctx, &vs[i])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeStore) FindVariant(_ context.Context, id primitive.ObjectID) (*models.ProductVariant, error) {
	v, ok := f.variants[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &v, nil
}

func (f *fakeStore) ListVariants(_ context.Context) ([]models.ProductVariant, error) {
	out := make([]models.ProductVariant, 0, len(f.variants))
	for _, v := range f.variants {
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeStore) UpdateVariantFields(_ context.Context, id primitive.ObjectID, _ bson.M) (int64, int64, error) {
	if _, ok := f.variants[id]; !ok {
		return 0, 0, nil
	}
	if f.noChangeOnUpdate {
		return 1, 0, nil
	}
	return 1, 1, nil
}

func (f *fakeStore) DeleteVariant(_ context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := f.variants[id]; !ok {
		return 0, nil
	}
	delete(f.variants, id)
	return 1, nil
}

func (f *fakeStore) DeleteVariantsByProduct(_ context.Context, productID primitive.ObjectID) (int64, error) {
	var n int64
	for id, v := range f.variants {
		if v.ProductID == productID {
			delete(f.variants, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) InsertUser(_ context.Context, u *models.User) (primitive.ObjectID, error) {
	if f.insertUserErr != nil {
		return primitive.NilObjectID, f.insertUserErr
	}
	id := primitive.NewObjectID()
	u.ID = id
	f.users[id] = *u
	return id, nil
}

func (f *fakeStore) FindUser(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &u, nil
}

func (f *fakeStore) ListUsers(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeStore) UpdateUserFields(_ context.Context, id primitive.ObjectID, _ bson.M) (int64, int64, error) {
	if _, ok := f.users[id]; !ok {
		return 0, 0, nil
	}
	if f.noChangeOnUpdate {
		return 1, 0, nil
	}
	return 1, 1, nil
}

func (f *fakeStore) DeleteUser(_ context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := f.users[id]; !ok {
		return 0, nil
	}
	delete(f.users, id)
	return 1, nil
}

var errBoom = errors.New("boom")
