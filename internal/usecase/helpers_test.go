package usecase

import (
	"context"
	"mime/multipart"
	"sort"
	"time"

	"campus-market/internal/data/entity"
	"campus-market/pkg/jwtauth"
	"campus-market/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		Auth: utils.AuthConfig{UniversityDomains: "go.buu.ac.th, eng.chula.ac.th"},
		JWT:  utils.JWTConfig{Secret: "test-secret", ExpiryHours: 24},
	}
}

func testTokens() *jwtauth.TokenService {
	return jwtauth.NewTokenService(testConfig().JWT)
}

// ---------- fake user repository ----------

type fakeUserRepo struct {
	nextID int64
	users  map[int64]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.nextID++
	user.ID = f.nextID
	if user.Role == "" {
		user.Role = entity.RoleUser
	}
	if user.Status == "" {
		user.Status = entity.StatusActive
	}
	user.CreatedAt = time.Now()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	if user, ok := f.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, user *entity.User) error {
	stored, ok := f.users[user.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.FirstName = user.FirstName
	stored.LastName = user.LastName
	stored.AvatarURL = user.AvatarURL
	stored.ContactFacebook = user.ContactFacebook
	stored.ContactLine = user.ContactLine
	stored.ContactInstagram = user.ContactInstagram
	f.users[user.ID] = stored
	return nil
}

func (f *fakeUserRepo) UpdateAvatar(_ context.Context, id int64, url string) error {
	stored, ok := f.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.AvatarURL = &url
	f.users[id] = stored
	return nil
}

// ---------- fake product repository ----------

type fakeProductRepo struct {
	nextID    int64
	products  map[int64]entity.Product
	sellers   map[int64]entity.User
	lastLimit int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: map[int64]entity.Product{},
		sellers:  map[int64]entity.User{},
	}
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product, coverURL *string) error {
	f.nextID++
	product.ID = f.nextID
	product.CreateTime = time.Unix(f.nextID, 0)
	if coverURL != nil {
		product.ImgURL = coverURL
	}
	f.products[product.ID] = *product
	return nil
}

func (f *fakeProductRepo) FindRecent(_ context.Context, limit int) ([]*entity.Product, error) {
	f.lastLimit = limit

	var products []*entity.Product
	for _, product := range f.products {
		p := product
		products = append(products, &p)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreateTime.After(products[j].CreateTime)
	})
	if len(products) > limit {
		products = products[:limit]
	}
	return products, nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	if product, ok := f.products[id]; ok {
		return &product, nil
	}
	return nil, nil
}

func (f *fakeProductRepo) FindByIDWithSeller(_ context.Context, id int64) (*entity.ProductWithSeller, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	seller := f.sellers[product.SellerID]
	return &entity.ProductWithSeller{
		Product:         product,
		SellerEmail:     seller.Email,
		SellerFirstName: seller.FirstName,
		SellerLastName:  seller.LastName,
	}, nil
}

func (f *fakeProductRepo) Update(_ context.Context, id int64, patch *entity.ProductPatch) error {
	stored, ok := f.products[id]
	if !ok {
		return pgx.ErrNoRows
	}
	if patch.Title != nil {
		stored.Title = *patch.Title
	}
	if patch.DescriptionSet {
		stored.Description = patch.Description
	}
	if patch.Price != nil {
		stored.Price = *patch.Price
	}
	if patch.ContactSet {
		stored.Contact = patch.Contact
	}
	if patch.CategorySet {
		stored.Category = patch.Category
	}
	if patch.CoverURL != nil {
		stored.ImgURL = patch.CoverURL
	}
	f.products[id] = stored
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.products[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.products, id)
	return nil
}

// ---------- fake upload storage ----------

type fakeStorage struct {
	saved   []string
	removed []string
}

func (f *fakeStorage) Save(header *multipart.FileHeader) (string, error) {
	url := "/uploads/" + header.Filename
	f.saved = append(f.saved, url)
	return url, nil
}

func (f *fakeStorage) Remove(url string) error {
	f.removed = append(f.removed, url)
	return nil
}

func imageFiles(names ...string) []*multipart.FileHeader {
	var files []*multipart.FileHeader
	for _, name := range names {
		files = append(files, &multipart.FileHeader{Filename: name})
	}
	return files
}

func nopLogger() *zap.Logger {
	return zap.NewNop()
}
