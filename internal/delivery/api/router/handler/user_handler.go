// Package handler contains the HTTP handlers for the API server.
package handler

import (
	"cmp"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"userapi/internal/delivery/api/response"
	"userapi/internal/delivery/api/validator"
	"userapi/internal/domain/entity"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UsersPath is the collection path; single users live under UsersPath/:id.
const UsersPath = "/v1/users"

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC    usecase.UserUsecase
	Validator *validator.CustomValidator
	Logger    *slog.Logger
}

// UserHandler holds dependencies for user-related handlers
type UserHandler struct {
	userUC    usecase.UserUsecase
	validator *validator.CustomValidator
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:    params.UserUC,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

var errMissingData = domainerrors.ErrInvalidInput.WithDetails(`user fields must be wrapped in the "data" field`)

// dataRequest is the envelope every request body is wrapped in.
type dataRequest[T any] struct {
	Data *T `json:"data"`
}

// UserRequest represents the body of create and replace requests
type UserRequest struct {
	Name        string     `json:"name" validate:"required,max=100"`
	Email       string     `json:"email" validate:"required,email"`
	BirthDate   civil.Date `json:"birthDate" validate:"required,pastdate"`
	Address     *string    `json:"address" validate:"omitnil,max=255"`
	PhoneNumber *string    `json:"phoneNumber" validate:"omitnil,e164"`
}

func (r *UserRequest) toEntity(id int64) *entity.User {
	return &entity.User{
		ID:          id,
		Name:        r.Name,
		Email:       r.Email,
		BirthDate:   r.BirthDate,
		Address:     r.Address,
		PhoneNumber: r.PhoneNumber,
	}
}

// ListUsers handles GET /v1/users with optional from/to birth-date bounds
func (h *UserHandler) ListUsers(c echo.Context) error {
	input, err := parseListInput(c)
	if err != nil {
		return err
	}

	users := h.userUC.ListUsers(c.Request().Context(), input)
	slices.SortFunc(users, func(a, b entity.User) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return response.Success(c, http.StatusOK, users)
}

// GetUser handles GET /v1/users/:id
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	user, ok := h.userUC.GetUser(c.Request().Context(), id)
	if !ok {
		return userNotFound(id)
	}

	return response.Success(c, http.StatusOK, user)
}

// CreateUser handles POST /v1/users
func (h *UserHandler) CreateUser(c echo.Context) error {
	req, err := h.bindUser(c)
	if err != nil {
		return err
	}

	created, err := h.userUC.CreateUser(c.Request().Context(), req.toEntity(0))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, fmt.Sprintf("%s/%d", UsersPath, created.ID), created)
}

// ReplaceUser handles PUT /v1/users/:id
func (h *UserHandler) ReplaceUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	req, err := h.bindUser(c)
	if err != nil {
		return err
	}

	user := req.toEntity(id)
	replaced, err := h.userUC.ReplaceUser(c.Request().Context(), user)
	if err != nil {
		return errors.WithStack(err)
	}
	if !replaced {
		return userNotFound(id)
	}

	return response.Success(c, http.StatusOK, user)
}

// PatchUser handles PATCH /v1/users/:id
func (h *UserHandler) PatchUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var body dataRequest[entity.UserPatch]
	if err := c.Bind(&body); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("malformed user patch")
	}
	if body.Data == nil {
		return errMissingData
	}
	if err := h.validatePatch(body.Data); err != nil {
		return err
	}

	ctx := c.Request().Context()
	patched, err := h.userUC.PatchUser(ctx, id, body.Data)
	if err != nil {
		return errors.WithStack(err)
	}
	if !patched {
		return userNotFound(id)
	}

	user, ok := h.userUC.GetUser(ctx, id)
	if !ok {
		return userNotFound(id)
	}

	return response.Success(c, http.StatusOK, user)
}

// DeleteUser handles DELETE /v1/users/:id. It answers 200 when a user was
// removed and 204 when there was nothing to remove.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if !h.userUC.DeleteUser(c.Request().Context(), id) {
		return response.NoContent(c)
	}

	return c.NoContent(http.StatusOK)
}

func (h *UserHandler) bindUser(c echo.Context) (*UserRequest, error) {
	var body dataRequest[UserRequest]
	if err := c.Bind(&body); err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("malformed user")
	}
	if body.Data == nil {
		return nil, errMissingData
	}
	if err := h.validator.Validate(body.Data); err != nil {
		return nil, err
	}

	return body.Data, nil
}

// validatePatch checks only the fields present in patch.
func (h *UserHandler) validatePatch(patch *entity.UserPatch) error {
	var failed []validator.FieldError
	check := func(field string, value any, tag string) {
		err := h.validator.Var(field, value, tag)
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			failed = append(failed, verr.Fields...)
		}
	}

	if v, ok := patch.Name.Get(); ok {
		check("name", v, "required,max=100")
	}
	if v, ok := patch.Email.Get(); ok {
		check("email", v, "required,email")
	}
	if v, ok := patch.BirthDate.Get(); ok {
		check("birthDate", v, "required,"+validator.TagPastDate)
	}
	if v, ok := patch.Address.Get(); ok && v != nil {
		check("address", *v, "max=255")
	}
	if v, ok := patch.PhoneNumber.Get(); ok && v != nil {
		check("phoneNumber", *v, "e164")
	}

	if len(failed) > 0 {
		return &validator.ValidationError{Fields: failed}
	}

	return nil
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, domainerrors.ErrInvalidID.WithDetails(fmt.Sprintf("got %q", c.Param("id")))
	}

	return id, nil
}

func parseListInput(c echo.Context) (usecase.ListUsersInput, error) {
	var (
		input  usecase.ListUsersInput
		failed []validator.FieldError
	)

	parse := func(name string) entity.Optional[civil.Date] {
		raw := c.QueryParam(name)
		if raw == "" {
			return entity.None[civil.Date]()
		}
		d, err := civil.ParseDate(raw)
		if err != nil {
			failed = append(failed, validator.FieldError{Field: name, Rule: "date", Param: "YYYY-MM-DD"})
			return entity.None[civil.Date]()
		}

		return entity.Some(d)
	}

	input.From = parse("from")
	input.To = parse("to")

	from, hasFrom := input.From.Get()
	to, hasTo := input.To.Get()
	if hasFrom && hasTo && from.After(to) {
		failed = append(failed, validator.FieldError{Field: "from", Rule: "ltefield", Param: "to"})
	}

	if len(failed) > 0 {
		return input, &validator.ValidationError{Fields: failed}
	}

	return input, nil
}

func userNotFound(id int64) error {
	return domainerrors.ErrUserNotFound.WithDetails(fmt.Sprintf("no user with id %d", id))
}
