package service

import (
	"FarmKeeper/internal/auth"
	"FarmKeeper/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("ok with defaulted role", func(t *testing.T) {
		m := new(mockUserRepo)
		svc := NewUserService(m, testSecret)

		m.On("GetByEmail", mock.Anything, "john@farm.es").Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()
		m.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			// hash stored, never the plaintext, and the role defaults
			return u.Email == "john@farm.es" &&
				u.Role == DefaultRole &&
				u.Password != "" && u.Password != "p@ss" &&
				bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("p@ss")) == nil
		})).Return(&model.User{ID: 10, Email: "john@farm.es", Role: DefaultRole}, nil).Once()

		user, err := svc.Register(ctx, "john@farm.es", "p@ss", "")
		assert.NoError(t, err)
		assert.Equal(t, uint(10), user.ID)
		m.AssertExpectations(t)
	})

	t.Run("missing email", func(t *testing.T) {
		m := new(mockUserRepo)
		svc := NewUserService(m, testSecret)

		_, err := svc.Register(ctx, "", "p@ss", "")
		var missing *MissingFieldError
		if assert.ErrorAs(t, err, &missing) {
			assert.Equal(t, "email", missing.Field)
		}
	})

	t.Run("missing password", func(t *testing.T) {
		m := new(mockUserRepo)
		svc := NewUserService(m, testSecret)

		_, err := svc.Register(ctx, "john@farm.es", "", "")
		var missing *MissingFieldError
		if assert.ErrorAs(t, err, &missing) {
			assert.Equal(t, "password", missing.Field)
		}
	})

	t.Run("conflict when email taken", func(t *testing.T) {
		m := new(mockUserRepo)
		svc := NewUserService(m, testSecret)

		m.On("GetByEmail", mock.Anything, "john@farm.es").Return(&model.User{ID: 1, Email: "john@farm.es"}, nil).Once()

		user, err := svc.Register(ctx, "john@farm.es", "p@ss", "")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrEmailTaken)
		m.AssertExpectations(t)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)

	t.Run("ok, token embeds user id", func(t *testing.T) {
		m := new(mockUserRepo)
		svc := NewUserService(m, testSecret)

		m.On("GetByEmail", mock.Anything, "alice@farm.es").Return(&model.User{ID: 2, Email: "alice@farm.es", Password: string(hash)}, nil).Once()

		token, user, err := svc.Login(ctx, "alice@farm.es", "secret")
		assert.NoError(t, err)
		assert.Equal(t, uint(2), user.ID)

		userID, err := auth.ParseToken(testSecret, token)
		assert.NoError(t, err)
		assert.Equal(t, uint(2), userID)
		m.AssertExpectations(t)
	})

	t.Run("two logins verify to the same user id", func(t *testing.T) {
		m := new(mockUserRepo)
		svc := NewUserService(m, testSecret)

		m.On("GetByEmail", mock.Anything, "alice@farm.es").Return(&model.User{ID: 2, Email: "alice@farm.es", Password: string(hash)}, nil).Twice()

		t1, _, err := svc.Login(ctx, "alice@farm.es", "secret")
		assert.NoError(t, err)
		t2, _, err := svc.Login(ctx, "alice@farm.es", "secret")
		assert.NoError(t, err)

		id1, err := auth.ParseToken(testSecret, t1)
		assert.NoError(t, err)
		id2, err := auth.ParseToken(testSecret, t2)
		assert.NoError(t, err)
		assert.Equal(t, id1, id2)
	})

	t.Run("invalid password", func(t *testing.T) {
		m := new(mockUserRepo)
		svc := NewUserService(m, testSecret)

		m.On("GetByEmail", mock.Anything, "alice@farm.es").Return(&model.User{ID: 2, Email: "alice@farm.es", Password: string(hash)}, nil).Once()

		_, user, err := svc.Login(ctx, "alice@farm.es", "wrong")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		m := new(mockUserRepo)
		svc := NewUserService(m, testSecret)

		m.On("GetByEmail", mock.Anything, "ghost@farm.es").Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()

		_, user, err := svc.Login(ctx, "ghost@farm.es", "secret")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserService_UpdateDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("update applies only supplied fields", func(t *testing.T) {
		m := new(mockUserRepo)
		svc := NewUserService(m, testSecret)

		m.On("GetByID", mock.Anything, uint(3)).Return(&model.User{ID: 3, Email: "old@farm.es", Role: "user"}, nil).Once()
		m.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "new@farm.es" && u.Role == "user"
		})).Return(nil).Once()

		user, err := svc.Update(ctx, 3, strPtr("new@farm.es"), nil)
		assert.NoError(t, err)
		assert.Equal(t, "new@farm.es", user.Email)
		m.AssertExpectations(t)
	})

	t.Run("update unknown id", func(t *testing.T) {
		m := new(mockUserRepo)
		svc := NewUserService(m, testSecret)

		m.On("GetByID", mock.Anything, uint(9)).Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()

		_, err := svc.Update(ctx, 9, strPtr("x@farm.es"), nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete unknown id", func(t *testing.T) {
		m := new(mockUserRepo)
		svc := NewUserService(m, testSecret)

		m.On("GetByID", mock.Anything, uint(9)).Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()

		assert.ErrorIs(t, svc.Delete(ctx, 9), ErrNotFound)
	})
}
