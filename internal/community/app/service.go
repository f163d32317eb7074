package app

import (
	"green-wheels/internal/community/domain"
	"green-wheels/internal/storage"
)

type CommunityService struct {
	communities *storage.Table[domain.Community, *domain.Community]
}

func NewCommunityService(communities *storage.Table[domain.Community, *domain.Community]) *CommunityService {
	return &CommunityService{communities: communities}
}

func (s *CommunityService) AllCommunities() []domain.Community {
	return s.communities.FindAll()
}
