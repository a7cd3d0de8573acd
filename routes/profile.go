package routes

import (
	"github.com/chirper-app/chirper-be/app"
	"github.com/chirper-app/chirper-be/model"
	"github.com/chirper-app/chirper-be/services"
	"github.com/chirper-app/chirper-be/util"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type profileRoutes struct {
	directory services.IdentityDirectory
	feed      *app.FeedService
	log       *zap.Logger
}

func AddProfileRoutes(group *gin.RouterGroup, directory services.IdentityDirectory, feed *app.FeedService, log *zap.Logger) {
	routes := profileRoutes{directory: directory, feed: feed, log: log}
	profiles := group.Group("/profiles")
	profiles.GET("/:username", util.HandlerWrapper(routes.getUserByUsername, &util.HandlerOpts{}))
	profiles.GET("/:username/posts", util.HandlerWrapper(routes.getPostsByUsername, &util.HandlerOpts{}))
}

func (pr *profileRoutes) getUserByUsername(c *gin.Context) (interface{}, *util.HTTPError) {
	profile, httpErr := pr.lookupProfile(c)
	if httpErr != nil {
		return nil, httpErr
	}
	return profile, nil
}

func (pr *profileRoutes) getPostsByUsername(c *gin.Context) (interface{}, *util.HTTPError) {
	profile, httpErr := pr.lookupProfile(c)
	if httpErr != nil {
		return nil, httpErr
	}
	return pr.feed.GetFeedByAuthor(c, profile.Id)
}

func (pr *profileRoutes) lookupProfile(c *gin.Context) (*model.PublicProfile, *util.HTTPError) {
	username := c.Param("username")
	if username == "" {
		return nil, util.BuildValidationHTTPErr("username", "username must not be empty")
	}
	profile, err := pr.directory.LookupByUsername(c, username)
	if err != nil {
		pr.log.Error("error looking up username in directory",
			zap.String("username", username), zap.Error(err))
		return nil, &util.InternalHTTPErr
	}
	if profile == nil {
		return nil, util.BuildNotFoundHTTPErr("user not found")
	}
	return profile, nil
}
