package routes

import (
	"github.com/chirper-app/chirper-be/app"
	"github.com/chirper-app/chirper-be/middleware"
	"github.com/chirper-app/chirper-be/util"
	"github.com/gin-gonic/gin"
)

type postRoutes struct {
	feed  *app.FeedService
	posts *app.PostService
}

func AddPostRoutes(group *gin.RouterGroup, feed *app.FeedService, posts *app.PostService, verifier middleware.TokenVerifier) {
	routes := postRoutes{feed: feed, posts: posts}
	postsGroup := group.Group("/posts", middleware.Auth(verifier))
	postsGroup.GET("", util.HandlerWrapper(routes.getPosts, &util.HandlerOpts{}))
	postsGroup.GET("/:id", util.HandlerWrapper(routes.getPostById, &util.HandlerOpts{}))
	postsGroup.PUT("", middleware.RequireSession(),
		util.HandlerWrapper(routes.createPost, &util.HandlerOpts{}))
}

type createPostReq struct {
	Content string `json:"content"`
}

func (pr *postRoutes) createPost(c *gin.Context) (interface{}, *util.HTTPError) {
	var req createPostReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	return pr.posts.CreatePost(c, middleware.MustGetUserId(c), req.Content)
}

func (pr *postRoutes) getPosts(c *gin.Context) (interface{}, *util.HTTPError) {
	return pr.feed.GetFeed(c)
}

func (pr *postRoutes) getPostById(c *gin.Context) (interface{}, *util.HTTPError) {
	return pr.feed.GetPostById(c, c.Param("id"))
}
