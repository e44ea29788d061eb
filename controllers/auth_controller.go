package controllers

import (
	"plateful/pkg/resp"
	"plateful/services"
	"plateful/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
	otp  *services.OTPService
}

func NewAuthController(auth *services.AuthService, otp *services.OTPService) *AuthController {
	return &AuthController{auth: auth, otp: otp}
}

func (ctl *AuthController) Register(c *gin.Context) {
	var in services.RegisterIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := ctl.auth.Register(&in)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, user)
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var in loginReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := ctl.auth.Login(in.Email, in.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

func (ctl *AuthController) Me(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	user, err := ctl.auth.GetProfile(userID)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, user)
}

type updateProfileReq struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	District  *string `json:"district"`
	City      *string `json:"city"`
}

func (ctl *AuthController) UpdateMe(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	var in updateProfileReq
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if in.FirstName != nil {
		updates["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		updates["last_name"] = *in.LastName
	}
	if in.Phone != nil {
		updates["phone_number"] = utils.NormalizePhone(*in.Phone)
	}
	if in.Address != nil {
		updates["address"] = *in.Address
	}
	if in.District != nil {
		updates["district"] = *in.District
	}
	if in.City != nil {
		updates["city"] = *in.City
	}

	user, err := ctl.auth.UpdateProfile(userID, updates)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, user)
}

func (ctl *AuthController) RequestOTP(c *gin.Context) {
	var in services.OTPRequestIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	requestID, err := ctl.otp.Request(&in)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"requestId": requestID})
}

func (ctl *AuthController) VerifyOTP(c *gin.Context) {
	var in services.OTPVerifyIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := ctl.otp.Verify(&in)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, out)
}
