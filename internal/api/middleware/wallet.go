package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/ThePeregrineCo/carstarz-registry/internal/api/shared/errors"
	"github.com/ThePeregrineCo/carstarz-registry/internal/domain"
)

// WalletHeader names the header carrying the caller's wallet address.
// The header is trusted as-is: the gateway in front of this service is
// expected to have verified the wallet signature. Nothing here checks a
// signature, only that the value is a well-formed address.
const WalletHeader = "X-Wallet-Address"

const walletContextKey = "caller_wallet"

// RequireWallet returns a gin middleware that extracts and validates the
// caller's wallet address. Requests without a valid wallet header are
// rejected before reaching the handler.
func RequireWallet() gin.HandlerFunc {
	return func(c *gin.Context) {
		wallet := c.GetHeader(WalletHeader)
		if wallet == "" {
			apiErr := apierrors.NewUnauthorizedError("Wallet address required", "missing "+WalletHeader+" header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiErr)
			return
		}

		if !domain.IsValidWallet(wallet) {
			apiErr := apierrors.NewBadRequestError("Invalid wallet address", wallet)
			c.AbortWithStatusJSON(http.StatusBadRequest, apiErr)
			return
		}

		c.Set(walletContextKey, domain.NormalizeWallet(wallet))
		c.Next()
	}
}

// CallerWallet returns the normalized wallet address set by RequireWallet,
// or "" when the request carried none.
func CallerWallet(c *gin.Context) string {
	return c.GetString(walletContextKey)
}
