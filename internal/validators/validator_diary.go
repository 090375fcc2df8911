package validators

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/adilzhm/travel-diary/models"
)

const (
	FieldEmail       = "email"
	FieldFullName    = "full_name"
	FieldPassword    = "password"
	FieldUserID      = "user_id"
	FieldPostID      = "post_id"
	FieldDestination = "destination"
	FieldDate        = "date"
	FieldVisibility  = "visibility"
	FieldPrice       = "price"
)

var allowedVisibilities = []any{
	models.VisibilityPublic,
	models.VisibilityPrivate,
}

type DiaryValidator struct {
}

func NewDiaryValidator() Validator {
	return &DiaryValidator{}
}

func (v *DiaryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.DiaryPost:
		return v.validateDiaryPost(ctx, value, fields...)
	case *models.DiaryPost:
		return v.validateDiaryPost(ctx, *value, fields...)

	case models.Trip:
		return v.validateTrip(ctx, value, fields...)
	case *models.Trip:
		return v.validateTrip(ctx, *value, fields...)

	case models.DeletePostRequest:
		return v.validateDeletePostRequest(ctx, value, fields...)
	case *models.DeletePostRequest:
		return v.validateDeletePostRequest(ctx, *value, fields...)

	case models.DeleteUserRequest:
		return v.validateDeleteUserRequest(ctx, value, fields...)
	case *models.DeleteUserRequest:
		return v.validateDeleteUserRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DiaryValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldFullName, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validation.Validate(req.Email, validation.Required, is.Email); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
			}
		case FieldFullName:
			if err := validation.Validate(req.FullName, validation.Required, validation.Length(1, 200)); err != nil {
				return fmt.Errorf("%w: %w", ErrEmptyFullName, err)
			}
		case FieldPassword:
			if err := validation.Validate(req.Password, validation.Required); err != nil {
				return fmt.Errorf("%w: %w", ErrEmptyPassword, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DiaryValidator) validateLoginRequest(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validation.Validate(req.Email, validation.Required, is.Email); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
			}
		case FieldPassword:
			if err := validation.Validate(req.Password, validation.Required); err != nil {
				return fmt.Errorf("%w: %w", ErrEmptyPassword, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DiaryValidator) validateDiaryPost(_ context.Context, post models.DiaryPost, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDestination, FieldDate, FieldVisibility}
	}

	for _, f := range fields {
		switch f {
		case FieldDestination:
			if err := validation.Validate(post.Destination, validation.Required); err != nil {
				return fmt.Errorf("%w: %w", ErrEmptyDestination, err)
			}
		case FieldDate:
			if post.Date.IsZero() {
				return ErrEmptyDate
			}
		case FieldVisibility:
			if err := validation.Validate(post.Visibility, validation.Required, validation.In(allowedVisibilities...)); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidVisibility, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DiaryValidator) validateTrip(_ context.Context, trip models.Trip, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDestination, FieldDate, FieldPrice}
	}

	for _, f := range fields {
		switch f {
		case FieldDestination:
			if err := validation.Validate(trip.Destination, validation.Required); err != nil {
				return fmt.Errorf("%w: %w", ErrEmptyDestination, err)
			}
		case FieldDate:
			if trip.Date.IsZero() {
				return ErrEmptyDate
			}
		case FieldPrice:
			if trip.Price < 0 {
				return ErrInvalidPrice
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DiaryValidator) validateDeletePostRequest(_ context.Context, req models.DeletePostRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldPostID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldPostID:
			if req.PostID <= 0 {
				return ErrInvalidPostID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DiaryValidator) validateDeleteUserRequest(_ context.Context, req models.DeleteUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
