package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"skillmatch_backend/internals/features/admin/dto"
	helper "skillmatch_backend/internals/helpers"
	"skillmatch_backend/internals/upstream"
)

type UserAdminController struct {
	API *upstream.Client
}

func NewUserAdminController(api *upstream.Client) *UserAdminController {
	return &UserAdminController{API: api}
}

// ✅ GetAll daftar user untuk tabel admin (paginated).
func (ctrl *UserAdminController) GetAll(c *fiber.Ctx) error {
	users, err := ctrl.API.ListUsers(c.UserContext(), helper.GetUpstreamTokenFromLocals(c))
	if err != nil {
		log.Println("[ERROR] Gagal ambil daftar user:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal memuat daftar user")
	}
	paging := helper.ResolvePaging(c, 20, 100)
	total := int64(len(users))
	start := paging.Offset
	if start > len(users) {
		start = len(users)
	}
	end := start + paging.Limit
	if end > len(users) {
		end = len(users)
	}
	return helper.JsonList(c, "", users[start:end],
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ✅ UpdateRole ubah role user (ADMIN/USER saja).
func (ctrl *UserAdminController) UpdateRole(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User id tidak valid")
	}
	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctrl.API.UpdateUserRole(c.UserContext(),
		helper.GetUpstreamTokenFromLocals(c), userID, req.Role); err != nil {
		log.Println("[ERROR] Gagal update role:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal menyimpan role")
	}
	return helper.JsonUpdated(c, "Role diupdate", fiber.Map{
		"user_id": userID,
		"role":    req.Role,
	})
}
