package adaptor

import (
	"net/http"

	"cinevault/internal/dto/request"
	"cinevault/internal/usecase"
	"cinevault/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetUsers handles GET /api/users
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	req := paginated(r)

	users, err := h.service.GetUsers(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err, "get users")
		return
	}

	utils.ResponseSuccess(w, r, "Users retrieved successfully", users)
}

// SearchUsers handles GET /api/users/search
func (h *UserHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := request.UserSearchRequest{
		PaginatedRequest: paginated(r),
		Username:         utils.ParseOptionalString(q.Get("username")),
		Email:            utils.ParseOptionalString(q.Get("email")),
	}

	var details []string
	from, err := utils.ParseOptionalTime("createdFrom", q.Get("createdFrom"), false)
	if err != nil {
		details = append(details, err.Error())
	}
	to, err := utils.ParseOptionalTime("createdTo", q.Get("createdTo"), true)
	if err != nil {
		details = append(details, err.Error())
	}
	if len(details) > 0 {
		utils.ResponseBadRequest(w, r, "Invalid query parameters", details)
		return
	}
	req.CreatedFrom = from
	req.CreatedTo = to

	users, err := h.service.SearchUsers(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err, "search users")
		return
	}

	utils.ResponseSuccess(w, r, "Users retrieved successfully", users)
}

// GetUserByID handles GET /api/users/{id}
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.service.GetUserByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, r, "User retrieved successfully", user)
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest[request.UserRequest](w, r)
	if !ok {
		return
	}

	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err, "create user")
		return
	}

	utils.ResponseCreated(w, r, "User created successfully", user)
}

// UpdateUser handles PUT /api/users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	req, ok := decodeRequest[request.UserUpdateRequest](w, r)
	if !ok {
		return
	}

	user, err := h.service.UpdateUser(r.Context(), id, &req)
	if err != nil {
		writeError(w, r, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, r, "User updated successfully", user)
}

// DeleteUser handles DELETE /api/users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		writeError(w, r, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, r, "User deleted successfully", nil)
}
