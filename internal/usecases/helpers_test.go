package usecases

import (
	"powgate/internal/domain"
	"powgate/pkg/pow"
)

type domainChallenge struct {
	secret string
	zeros  int
}

func (c domainChallenge) build() *domain.Challenge {
	return &domain.Challenge{
		Secret: c.secret,
		Zeros:  c.zeros,
		Text:   pow.ChallengeText(c.secret, c.zeros),
	}
}
