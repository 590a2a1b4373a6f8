package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasferr/pdv-varejo/internal/adapter/api/dto"
	"github.com/lucasferr/pdv-varejo/internal/domain/user"
)

// Permission identifica uma ação protegida da API
type Permission string

const (
	PermProductRead   Permission = "products:read"
	PermProductWrite  Permission = "products:write"
	PermCategoryWrite Permission = "categories:write"
	PermSaleCreate    Permission = "sales:create"
	PermSaleRead      Permission = "sales:read"
	PermStockRead     Permission = "stock:read"
	PermStockAdjust   Permission = "stock:adjust"
	PermCashFlowRead  Permission = "cashflow:read"
	PermCashFlowWrite Permission = "cashflow:write"
	PermRegisterRead  Permission = "register:read"
	PermRegisterOpen  Permission = "register:operate"
	PermUserManage    Permission = "users:manage"
	PermSettingsWrite Permission = "settings:write"
	PermExportRead    Permission = "export:read"
)

// policy é a tabela única de autorização: papel -> permissões. Toda decisão
// de acesso é resolvida aqui, nunca por comparação de papel espalhada pelos
// controllers.
var policy = map[user.Role]map[Permission]bool{
	user.RoleAdmin: {
		PermProductRead:   true,
		PermProductWrite:  true,
		PermCategoryWrite: true,
		PermSaleCreate:    true,
		PermSaleRead:      true,
		PermStockRead:     true,
		PermStockAdjust:   true,
		PermCashFlowRead:  true,
		PermCashFlowWrite: true,
		PermRegisterRead:  true,
		PermRegisterOpen:  true,
		PermUserManage:    true,
		PermSettingsWrite: true,
		PermExportRead:    true,
	},
	user.RolePDV: {
		PermProductRead:  true,
		PermSaleCreate:   true,
		PermSaleRead:     true,
		PermRegisterRead: true,
		PermRegisterOpen: true,
	},
	user.RoleStock: {
		PermProductRead:   true,
		PermProductWrite:  true,
		PermCategoryWrite: true,
		PermStockRead:     true,
		PermStockAdjust:   true,
	},
}

// HasPermission verifica se um papel possui uma permissão
func HasPermission(role user.Role, perm Permission) bool {
	perms, ok := policy[role]
	if !ok {
		return false
	}
	return perms[perm]
}

// RequirePermission cria um middleware que exige uma permissão. Deve ser
// usado após JWTAuthMiddleware, que carrega o papel no contexto.
func RequirePermission(perm Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("user_role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticação requerida",
				"",
			))
			return
		}

		role, ok := roleVal.(string)
		if !ok || !HasPermission(user.Role(role), perm) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				http.StatusForbidden,
				"Acesso negado",
				"Você não tem permissão para acessar este recurso",
			))
			return
		}

		c.Next()
	}
}
