package auth

import (
	"testing"

	"github.com/lucasferr/pdv-varejo/internal/domain/user"
)

func TestPolicyAdminTemTodasAsPermissoes(t *testing.T) {
	perms := []Permission{
		PermProductRead, PermProductWrite, PermCategoryWrite,
		PermSaleCreate, PermSaleRead,
		PermStockRead, PermStockAdjust,
		PermCashFlowRead, PermCashFlowWrite,
		PermRegisterRead, PermRegisterOpen,
		PermUserManage, PermSettingsWrite, PermExportRead,
	}
	for _, perm := range perms {
		if !HasPermission(user.RoleAdmin, perm) {
			t.Errorf("admin sem permissão %q", perm)
		}
	}
}

func TestPolicyPDVOperaVendasMasNaoCadastros(t *testing.T) {
	allowed := []Permission{PermProductRead, PermSaleCreate, PermSaleRead, PermRegisterOpen, PermRegisterRead}
	for _, perm := range allowed {
		if !HasPermission(user.RolePDV, perm) {
			t.Errorf("pdv sem permissão %q", perm)
		}
	}

	denied := []Permission{PermProductWrite, PermStockAdjust, PermCashFlowWrite, PermUserManage, PermSettingsWrite}
	for _, perm := range denied {
		if HasPermission(user.RolePDV, perm) {
			t.Errorf("pdv com permissão indevida %q", perm)
		}
	}
}

func TestPolicyEstoqueGerenciaCatalogoMasNaoVende(t *testing.T) {
	allowed := []Permission{PermProductRead, PermProductWrite, PermCategoryWrite, PermStockAdjust, PermStockRead}
	for _, perm := range allowed {
		if !HasPermission(user.RoleStock, perm) {
			t.Errorf("estoque sem permissão %q", perm)
		}
	}

	denied := []Permission{PermSaleCreate, PermRegisterOpen, PermCashFlowWrite, PermUserManage}
	for _, perm := range denied {
		if HasPermission(user.RoleStock, perm) {
			t.Errorf("estoque com permissão indevida %q", perm)
		}
	}
}

func TestPolicyPapelDesconhecidoNadaPode(t *testing.T) {
	if HasPermission(user.Role("gerente"), PermProductRead) {
		t.Error("papel desconhecido recebeu permissão")
	}
}
