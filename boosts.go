package dexscreener

import "context"

// GetBoostedTokens returns the most recently boosted tokens. The upstream
// answers with a bare array; null decodes to an empty result.
func (c *Client) GetBoostedTokens(ctx context.Context) ([]BoostedToken, error) {
	var boosts []BoostedToken
	if err := c.get(ctx, boostsLatestPath, &boosts); err != nil {
		return nil, err
	}
	return boosts, nil
}

// GetTopBoostedTokens returns the tokens with the most active boosts.
func (c *Client) GetTopBoostedTokens(ctx context.Context) ([]BoostedToken, error) {
	var boosts []BoostedToken
	if err := c.get(ctx, boostsTopPath, &boosts); err != nil {
		return nil, err
	}
	return boosts, nil
}

// GetTokenProfiles returns the latest token profiles.
func (c *Client) GetTokenProfiles(ctx context.Context) ([]TokenProfile, error) {
	var profiles []TokenProfile
	if err := c.get(ctx, profilesPath, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
