// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/diffeo/go-wprest/memory"
	"github.com/diffeo/go-wprest/restclient"
	"github.com/diffeo/go-wprest/restserver"
	"github.com/diffeo/go-wprest/wordpress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newClient sets up an object stack where the REST client code talks
// to the REST server code, which points at an in-memory blog.
func newClient(t *testing.T, blog wordpress.Blog) *restclient.Client {
	config := restserver.DefaultConfig()
	config.PageSize = 3
	server := httptest.NewServer(restserver.NewRouter(blog, config))
	t.Cleanup(server.Close)
	client, err := restclient.New(server.URL)
	require.NoError(t, err)
	return client
}

func TestEmptyURL(t *testing.T) {
	_, err := restclient.New("")
	assert.Error(t, err)
}

func TestPostsWalk(t *testing.T) {
	blog := memory.New()
	blog.SetOption("blog_title", "Walk")
	blog.AddUser(wordpress.User{ID: "1", Username: "admin"})
	for i := 1; i <= 7; i++ {
		blog.AddPost(wordpress.Post{ID: strconv.Itoa(i), AuthorID: "1"})
	}
	for i := 8; i <= 9; i++ {
		blog.AddPost(wordpress.Post{ID: strconv.Itoa(i), Type: "page"})
	}
	client := newClient(t, blog)
	assert.Equal(t, "Walk", client.Root.Name)

	posts, err := client.Posts("post")
	require.NoError(t, err)
	var ids []string
	for _, post := range posts {
		ids = append(ids, post.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7"}, ids)

	pages, err := client.Posts("page")
	require.NoError(t, err)
	assert.Len(t, pages, 2)

	post, err := client.Post("4")
	require.NoError(t, err)
	if assert.NotNil(t, post.Author) {
		assert.Equal(t, "admin", post.Author.Username)
	}

	var author struct {
		Username string `json:"username"`
	}
	require.NoError(t, client.Follow(post.Meta.Links.Author, &author))
	assert.Equal(t, "admin", author.Username)
}

func TestExactlyFullLastPage(t *testing.T) {
	blog := memory.New()
	for i := 1; i <= 6; i++ {
		blog.AddUser(wordpress.User{ID: strconv.Itoa(i)})
	}
	client := newClient(t, blog)

	users, err := client.Users()
	require.NoError(t, err)
	assert.Len(t, users, 6)
}

func TestCommentsOfPost(t *testing.T) {
	blog := memory.New()
	blog.AddPost(wordpress.Post{ID: "1"})
	for i := 1; i <= 4; i++ {
		blog.AddComment(wordpress.Comment{ID: strconv.Itoa(i), PostID: "1"})
	}
	blog.AddComment(wordpress.Comment{ID: "5", PostID: "2"})
	client := newClient(t, blog)

	post, err := client.Post("1")
	require.NoError(t, err)
	comments, err := client.Comments(post.Meta.Links.Comments)
	require.NoError(t, err)
	assert.Len(t, comments, 4)

	comments, err = client.Comments("")
	require.NoError(t, err)
	assert.Len(t, comments, 5)

	comment, err := client.Comment("5")
	require.NoError(t, err)
	assert.Equal(t, "5", comment.ID)
}

func TestTaxonomyTerms(t *testing.T) {
	blog := memory.New()
	blog.AddTerm(wordpress.Term{ID: "1", Name: "One", Taxonomy: "post_tag"})
	blog.AddTerm(wordpress.Term{ID: "2", Name: "Two", Taxonomy: "post_tag"})
	client := newClient(t, blog)

	taxonomies, err := client.Taxonomies()
	require.NoError(t, err)
	assert.Len(t, taxonomies, 2)

	tags, err := client.Taxonomy("post_tag")
	require.NoError(t, err)
	terms, err := client.Terms(tags)
	require.NoError(t, err)
	assert.Len(t, terms, 2)

	term, err := client.Term(tags, "2")
	require.NoError(t, err)
	assert.Equal(t, "Two", term.Name)
	assert.Equal(t, "post_tag", term.Taxonomy.Name)
}

func TestMedia(t *testing.T) {
	blog := memory.New()
	blog.AddMediaItem(wordpress.MediaItem{ID: "1", Type: "image/jpeg"})
	blog.AddMediaItem(wordpress.MediaItem{ID: "2", Type: "audio/ogg"})
	client := newClient(t, blog)

	images, err := client.Media("image")
	require.NoError(t, err)
	if assert.Len(t, images, 1) {
		assert.Equal(t, "1", images[0].ID)
	}

	item, err := client.MediaItem("audio_item", "2")
	require.NoError(t, err)
	assert.Equal(t, "audio/ogg", item.Type)

	_, err = client.Media("attachment")
	assert.Error(t, err)
}

func TestServerError(t *testing.T) {
	client := newClient(t, memory.New())
	_, err := client.Post("99")
	if assert.Error(t, err) {
		assert.Equal(t, "No such post 99", err.Error())
	}
}

func TestBackendCallError(t *testing.T) {
	client := newClient(t, failingBlog{memory.New()})
	_, err := client.User("1")
	var callErr wordpress.ErrCall
	if assert.True(t, errors.As(err, &callErr)) {
		assert.Equal(t, "wp.getUser", callErr.Method)
		assert.Equal(t, "Invalid user ID.", callErr.Err.Error())
	}
}

func TestNonJSONError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()
	_, err := restclient.New(server.URL)
	var httpErr restclient.ErrorHTTP
	if assert.True(t, errors.As(err, &httpErr)) {
		assert.Equal(t, http.StatusNotFound, httpErr.Response.StatusCode)
	}
}

// failingBlog fails user lookups the way the XML-RPC backend does.
type failingBlog struct {
	*memory.Blog
}

func (failingBlog) User(id string) (wordpress.User, error) {
	return wordpress.User{}, wordpress.ErrCall{Method: "wp.getUser", Err: errors.New("Invalid user ID.")}
}
