package mailer

import "html/template"

type welcomeData struct {
	Name     string
	Role     string
	RegNo    string
	Password string
	ImageURL string
}

type roleChangeData struct {
	Name     string
	OldRole  string
	NewRole  string
	ImageURL string
}

type passwordChangeData struct {
	Name  string
	RegNo string
}

type otpData struct {
	Name  string
	RegNo string
	Code  string
}

var memberWelcomeTemplate = template.Must(template.New("member_welcome").Parse(`
<html>
  <body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px; color: #333;">
    <div style="max-width: 600px; margin: auto; background: #ffffff; border-radius: 8px; padding: 20px; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">
      <h2 style="color: #2c3e50; text-align: center;">Welcome to the Department!</h2>
      <p>Dear <b>{{.Name}}</b>,</p>
      <p>
        We are delighted to welcome you as a <b>{{.Role}}</b> of the department.
        Your account has been successfully created in our system.
      </p>
      <h3 style="color: #2c3e50; margin-top: 20px;">Your Login Credentials</h3>
      <p><b>Registration Number:</b> {{.RegNo}}</p>
      <p><b>Temporary Password:</b> {{.Password}}</p>
      <p style="background: #f1f1f1; padding: 10px; border-radius: 6px; font-size: 14px; color: #555;">
        Please log in and change your password immediately after your first login for security reasons.
      </p>
      <p>
        If you encounter any difficulties, kindly contact the department's IT support team for assistance.
      </p>
      <p style="margin-top: 30px;">Best regards,<br>
      <b>The Department Team</b></p>
    </div>
  </body>
</html>
`))

var lecturerWelcomeTemplate = template.Must(template.New("lecturer_welcome").Parse(`
<html>
  <body style="font-family: Arial, sans-serif; color: #333; background-color: #f9f9f9; padding: 20px;">
    <div style="max-width: 600px; margin: auto; background: #fff; padding: 20px; border-radius: 10px; text-align: center; box-shadow: 0 2px 5px rgba(0,0,0,0.1);">
      <img src="{{.ImageURL}}" alt="Department Logo" style="max-width: 150px; margin-bottom: 20px;">
      <h2 style="color: #2c3e50;">Welcome, {{.Name}}!</h2>
      <p style="font-size: 16px;">Your Department account has been successfully created.</p>
      <p style="font-size: 16px;"><b>Designation:</b> {{.Role}}</p>
      <p style="font-size: 16px; color: #27ae60;"><b>Password:</b> {{.Password}}</p>
      <p style="font-size: 15px; line-height: 1.5;">
        We look forward to your valuable contributions to our department's academic and research activities.
      </p>
      <p style="margin-top: 30px; font-weight: bold; color: #555;">Sincerely,<br>The Department Team</p>
    </div>
  </body>
</html>
`))

var roleChangeTemplate = template.Must(template.New("role_change").Parse(`
<html>
  <body style="font-family: Arial, sans-serif; color: #333; background-color: #f9f9f9; padding: 20px;">
    <div style="max-width: 600px; margin: auto; background: #fff; padding: 20px; border-radius: 10px; text-align: center; box-shadow: 0 2px 5px rgba(0,0,0,0.1);">
      <img src="{{.ImageURL}}" alt="Department Logo" style="max-width: 150px; margin-bottom: 20px;">
      <h2 style="color: #2c3e50;">Hello, {{.Name}}!</h2>
      <p style="font-size: 16px;">This is to inform you that your role in the Department has been updated.</p>
      <p style="font-size: 16px;"><b>Previous Role:</b> {{.OldRole}}</p>
      <p style="font-size: 16px; color: #27ae60;"><b>New Role:</b> {{.NewRole}}</p>
      <p style="font-size: 15px; line-height: 1.5;">
        If you have any questions or believe this change was made in error, please reach out
        to your lecturer or the department admin for clarification.
      </p>
      <p style="margin-top: 30px; font-weight: bold; color: #555;">Best regards,<br>The Department Team</p>
    </div>
  </body>
</html>
`))

var passwordChangeTemplate = template.Must(template.New("password_change").Parse(`
<html>
  <body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px; color: #333;">
    <div style="max-width: 600px; margin: auto; background: #ffffff; border-radius: 8px; padding: 20px; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">
      <h2 style="color: #2c3e50; text-align: center;">Password Changed</h2>
      <p>Dear <b>{{.Name}}</b>,</p>
      <p>
        The password for the account with registration number <b>{{.RegNo}}</b>
        has just been changed. If you made this change, no further action is needed.
      </p>
      <p style="background: #f1f1f1; padding: 10px; border-radius: 6px; font-size: 14px; color: #555;">
        If you did not make this change, contact the department admin immediately.
      </p>
      <p style="margin-top: 30px;">Best regards,<br>
      <b>The Department Team</b></p>
    </div>
  </body>
</html>
`))

var lecturerPasswordChangeTemplate = template.Must(template.New("lecturer_password_change").Parse(`
<html>
  <body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px; color: #333;">
    <div style="max-width: 600px; margin: auto; background: #ffffff; border-radius: 8px; padding: 20px; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">
      <h2 style="color: #2c3e50; text-align: center;">Password Changed</h2>
      <p>Dear <b>{{.Name}}</b>,</p>
      <p>
        Your Department account password has just been changed.
        If you made this change, no further action is needed.
      </p>
      <p style="background: #f1f1f1; padding: 10px; border-radius: 6px; font-size: 14px; color: #555;">
        If you did not make this change, contact the department admin immediately.
      </p>
      <p style="margin-top: 30px;">Best regards,<br>
      <b>The Department Team</b></p>
    </div>
  </body>
</html>
`))

var otpTemplate = template.Must(template.New("reset_otp").Parse(`
<html>
  <body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px; color: #333;">
    <div style="max-width: 600px; margin: auto; background: #ffffff; border-radius: 8px; padding: 20px; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">
      <h2 style="color: #2c3e50; text-align: center;">Password Reset Request</h2>
      <p>Dear <b>{{.Name}}</b>,</p>
      {{if .RegNo}}<p>A password reset was requested for registration number <b>{{.RegNo}}</b>.</p>{{end}}
      <p>Use the one-time password below to reset your password:</p>
      <p style="text-align: center; font-size: 28px; letter-spacing: 6px; font-weight: bold; color: #2c3e50;">{{.Code}}</p>
      <p style="background: #f1f1f1; padding: 10px; border-radius: 6px; font-size: 14px; color: #555;">
        This code expires in 5 minutes. If you did not request a reset, you can safely ignore this email.
      </p>
      <p style="margin-top: 30px;">Best regards,<br>
      <b>The Department Team</b></p>
    </div>
  </body>
</html>
`))
