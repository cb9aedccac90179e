package scores

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Trust447/hemeson-academy-portal-sub000/app/config"
)

// EntryTicket is the short-lived pass a successful token redemption
// hands to the score-entry page. It carries the entry context between
// the redeem and submit steps so nothing lives in ambient session
// state; the submit endpoint still re-checks the raw token.
type EntryTicket struct {
	TokenID   string `json:"token_id"`
	ClassID   string `json:"class_id"`
	SubjectID string `json:"subject_id"`
	TermID    string `json:"term_id"`
	jwt.RegisteredClaims
}

func IssueEntryTicket(tokenID, classID, subjectID, termID string) (string, error) {
	claims := EntryTicket{
		TokenID:   tokenID,
		ClassID:   classID,
		SubjectID: subjectID,
		TermID:    termID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.AppConfig.EntryTicketTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "hemeson-academy",
			Subject:   "score-entry",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

func ParseEntryTicket(ticket string) (*EntryTicket, error) {
	token, err := jwt.ParseWithClaims(ticket, &EntryTicket{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*EntryTicket); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrInvalidKey
}
