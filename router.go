package main

import (
	"school-hub/biz/adaptor"
	handler "school-hub/biz/adaptor/controller"
	"school-hub/biz/adaptor/controller/show"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizedRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", handler.Ping)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/register", show.Register)
		auth.POST("/sign_in", show.SignIn)
	}

	// 以下接口需要登录
	authed := api.Group("", adaptor.Authenticate())
	{
		authed.GET("/users", show.ListUsers)

		profile := authed.Group("/profile")
		profile.GET("", show.GetProfile)
		profile.PUT("", show.UpdateProfile)
		profile.POST("/link-child", show.LinkChild)

		classes := authed.Group("/classes")
		classes.GET("", show.ListClasses)
		classes.POST("", show.CreateClass)
		classes.GET("/:id", show.GetClass)
		classes.PUT("/:id", show.UpdateClass)
		classes.DELETE("/:id", show.DeleteClass)
		classes.POST("/:id/students", show.AddStudent)
		classes.DELETE("/:id/students", show.RemoveStudent)

		resources := authed.Group("/resources")
		resources.GET("", show.ListResources)
		resources.POST("", show.CreateResource)
		resources.GET("/class/:classId", show.ListResources)
		resources.GET("/:id", show.GetResource)
		resources.PUT("/:id", show.UpdateResource)
		resources.DELETE("/:id", show.DeleteResource)

		schedules := authed.Group("/schedules")
		schedules.GET("", show.ListSchedules)
		schedules.POST("", show.CreateSchedule)
		schedules.GET("/class/:classId", show.ListSchedules)
		schedules.GET("/:id", show.GetSchedule)
		schedules.PUT("/:id", show.UpdateSchedule)
		schedules.DELETE("/:id", show.DeleteSchedule)

		messages := authed.Group("/messages")
		messages.GET("", show.ListConversations)
		messages.POST("", show.SendMessage)
		messages.GET("/conversation/:userId", show.GetThread)
		messages.PUT("/:id/read", show.MarkRead)
		messages.DELETE("/:id", show.DeleteMessage)
	}
}
